package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/adaptive-learning/studybuddy/internal/screen"
	"github.com/adaptive-learning/studybuddy/internal/state"
)

// Factory builds a fresh screen for a view.
type Factory func(v state.View) screen.Screen

// Router shows exactly one screen: the one for the current view. A view
// change unmounts the old screen, discarding its local state, and mounts
// a new one.
type Router struct {
	factory Factory
	view    state.View
	active  screen.Screen
}

// New creates an empty Router. Nothing is mounted until Sync.
func New(factory Factory) *Router {
	return &Router{factory: factory}
}

// Sync mounts the screen for v unless it is already showing.
func (r *Router) Sync(v state.View) tea.Cmd {
	if r.active != nil && r.view == v {
		return nil
	}
	return r.Mount(v)
}

// Mount unconditionally replaces the active screen with a fresh one for v.
func (r *Router) Mount(v state.View) tea.Cmd {
	r.view = v
	r.active = r.factory(v)
	if r.active == nil {
		return nil
	}
	return r.active.Init()
}

// View returns the mounted view.
func (r *Router) Current() state.View { return r.view }

// Active returns the mounted screen, or nil.
func (r *Router) Active() screen.Screen { return r.active }

// Update forwards a message to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// Render renders the active screen.
func (r *Router) Render(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
