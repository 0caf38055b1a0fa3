// Package response builds the wire bodies the records API answers with:
// {message} / {message,data} on success paths, {error} on failures.
package response

type Body map[string]any

func Message(msg string) Body { return Body{"message": msg} }

func MessageData(msg string, data any) Body {
	if data == nil {
		data = struct{}{}
	}
	return Body{"message": msg, "data": data}
}

func Data(data any) Body {
	if data == nil {
		data = []struct{}{}
	}
	return Body{"data": data}
}

func Err(msg string) Body { return Body{"error": msg} }
