package router

import (
	"github.com/abhisek/ifrshub/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
// Href is the address shown while the screen is active.
type PushScreenMsg struct {
	Screen screen.Screen
	Href   string
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// ReplaceScreenMsg requests the router to swap the top screen.
type ReplaceScreenMsg struct {
	Screen screen.Screen
	Href   string
}

// PopToRootMsg requests the router to drop everything above the first screen.
type PopToRootMsg struct{}

// NavigateMsg requests the screen for an href. The router's resolver turns
// the href into a screen, which is pushed.
type NavigateMsg struct {
	Href string
}

// Navigate returns a command that emits a NavigateMsg.
func Navigate(href string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Href: href} }
}

// Resolver builds the screen for an href. It must always return a screen;
// hrefs it does not know get a placeholder.
type Resolver func(href string) screen.Screen

// Router manages a stack of screens.
type Router struct {
	stack   []screen.Screen
	hrefs   []string
	resolve Resolver
}

// New creates a new Router with the given initial screen. A nil resolver
// ignores NavigateMsg.
func New(initial screen.Screen, resolve Resolver) *Router {
	return &Router{
		stack:   []screen.Screen{initial},
		hrefs:   []string{"/"},
		resolve: resolve,
	}
}

// Push adds a screen opened at href on top of the stack and calls its
// Init().
func (r *Router) Push(s screen.Screen, href string) tea.Cmd {
	r.stack = append(r.stack, s)
	r.hrefs = append(r.hrefs, href)
	return s.Init()
}

// Pop removes the top screen. No-op if stack depth would become 0.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	r.hrefs = r.hrefs[:len(r.hrefs)-1]
	return nil
}

// PopToRoot removes every screen above the first one.
func (r *Router) PopToRoot() tea.Cmd {
	r.stack = r.stack[:1]
	r.hrefs = r.hrefs[:1]
	return nil
}

// Replace swaps the top screen for s, opened at href, and calls its Init().
// The stack depth is unchanged.
func (r *Router) Replace(s screen.Screen, href string) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	r.hrefs[len(r.hrefs)-1] = href
	return s.Init()
}

// Navigate resolves href and pushes the resulting screen.
func (r *Router) Navigate(href string) tea.Cmd {
	if r.resolve == nil {
		return nil
	}
	return r.Push(r.resolve(href), href)
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Href returns the href the active screen was opened with.
func (r *Router) Href() string {
	return r.hrefs[len(r.hrefs)-1]
}

// Depth returns the number of screens on the stack.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen, msg.Href)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen, msg.Href)
	case PopToRootMsg:
		return r.PopToRoot()
	case NavigateMsg:
		return r.Navigate(msg.Href)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
