// Command form is a terminal front end for the employee records API. It keeps
// the same session-local table the browser form keeps and drives the same
// create/update/delete operations.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"employee-records/internal/core/config"
	"employee-records/pkg/formclient"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))

	api := formclient.New(cfg.Client.BaseURL, time.Duration(cfg.Client.TimeoutSec)*time.Second)
	form := formclient.NewForm(api)

	ctx := context.Background()
	if err := form.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not load existing records: %v\n", err)
	}

	fmt.Printf("employee records @ %s\n", cfg.Client.BaseURL)
	fmt.Println("commands: list, add, edit <id>, delete <id>, reset, quit")

	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !in.Scan() {
			return
		}
		line := strings.TrimSpace(in.Text())
		cmd, arg, _ := strings.Cut(line, " ")
		arg = strings.TrimSpace(arg)

		switch cmd {
		case "", "help":
			fmt.Println("commands: list, add, edit <id>, delete <id>, reset, quit")
		case "quit", "exit":
			return
		case "list":
			printRecords(form.Records())
		case "add":
			form.SetFields(promptRecord(in, formclient.Record{}, false))
			submit(ctx, form)
		case "edit":
			if !form.Edit(arg) {
				fmt.Printf("no record with employee_id %q\n", arg)
				continue
			}
			form.SetFields(promptRecord(in, form.Fields(), true))
			submit(ctx, form)
		case "delete":
			if err := form.Delete(ctx, arg); err != nil {
				fmt.Println(form.ErrorMessage())
				continue
			}
			fmt.Println("deleted", arg)
		case "reset":
			form.Reset()
		default:
			fmt.Printf("unknown command %q\n", cmd)
		}
	}
}

func submit(ctx context.Context, form *formclient.Form) {
	if err := form.Submit(ctx); err != nil {
		fmt.Println(form.ErrorMessage())
		return
	}
	fmt.Println("saved")
}

// promptRecord asks for each field; while editing, blank input keeps the
// current value and the key cannot change.
func promptRecord(in *bufio.Scanner, cur formclient.Record, editing bool) formclient.Record {
	ask := func(label, cur string) string {
		if cur != "" {
			fmt.Printf("%s [%s]: ", label, cur)
		} else {
			fmt.Printf("%s: ", label)
		}
		if !in.Scan() {
			return cur
		}
		v := strings.TrimSpace(in.Text())
		if v == "" {
			return cur
		}
		return v
	}

	cur.Name = ask("name", cur.Name)
	if !editing {
		cur.EmployeeID = ask("employee_id", cur.EmployeeID)
	}
	cur.Email = ask("email", cur.Email)
	cur.Phone = ask("phone", cur.Phone)
	cur.Department = ask("department (HR/Engineering/Marketing)", cur.Department)
	cur.DateOfJoining = ask("date_of_joining (YYYY-MM-DD)", cur.DateOfJoining)
	cur.Role = ask("role", cur.Role)
	return cur
}

func printRecords(records []formclient.Record) {
	if len(records) == 0 {
		fmt.Println("no employee data available")
		return
	}
	for _, r := range records {
		fmt.Printf("%-10s %-20s %-25s %-12s %-12s %-10s %s\n",
			r.EmployeeID, r.Name, r.Email, r.Phone, r.Department, r.DateOfJoining, r.Role)
	}
}
