package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// APIModule is anything that can attach routes to the API group.
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// Optional: controls mount order (lower mounts first, default 100).
type prioritizer interface{ Priority() int }

// Registry collects API modules and mounts them in priority order.
type Registry struct {
	mu   sync.RWMutex
	mods []APIModule
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) Register(mod APIModule) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mods = append(r.mods, mod)
}

// MountAll mounts every registered module on the API group.
func (r *Registry) MountAll(api *gin.RouterGroup) {
	r.mu.RLock()
	mods := append([]APIModule(nil), r.mods...)
	r.mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
