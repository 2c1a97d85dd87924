package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"canvas-arcade/scheduler"
)

var ErrUnknownRoute = errors.New("unknown route")

type Route string

const (
	RouteSnake  Route = "snake"
	RouteCanvas Route = "canvas"
)

// Widget is a page the router can mount.
type Widget interface {
	Mount(host *Host, sched *scheduler.Scheduler)
	Unmount()
	Layout(bounds Rect)
	Scene() Scene
}

const tabBarHeight = 36

var (
	tabBarColor = rgb(0x111111)
	tabColor    = rgb(0x333333)
	tabActive   = rgb(0x4caf50)
)

// Router mounts exactly one widget at a time below a tab bar. Switching
// routes unmounts the previous widget first.
type Router struct {
	host   *Host
	sched  *scheduler.Scheduler
	logger *slog.Logger

	order   []Route
	widgets map[Route]Widget
	current Route

	subs subscriptions
	tabs []Button
}

func NewRouter(host *Host, sched *scheduler.Scheduler, logger *slog.Logger) *Router {
	r := &Router{
		host:    host,
		sched:   sched,
		logger:  logger.With(slog.String("component", "router")),
		widgets: make(map[Route]Widget),
	}
	r.subs.listen(host, Resize, func(Event) { r.layout() })
	r.subs.listen(host, PointerDown, r.onPointerDown)
	r.subs.listen(host, KeyDown, r.onKey)
	return r
}

func (r *Router) Register(route Route, w Widget) {
	if _, ok := r.widgets[route]; !ok {
		r.order = append(r.order, route)
	}
	r.widgets[route] = w
}

func (r *Router) Current() Route {
	return r.current
}

// Navigate unmounts the current widget and mounts the one for route.
func (r *Router) Navigate(route Route) error {
	next, ok := r.widgets[route]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownRoute, route)
	}
	if route == r.current {
		return nil
	}

	if prev, ok := r.widgets[r.current]; ok {
		prev.Unmount()
	}

	r.current = route
	next.Mount(r.host, r.sched)
	r.layout()

	r.logger.Info("route changed", slog.String("route", string(route)))
	return nil
}

// Next cycles through the registered routes.
func (r *Router) Next() {
	if len(r.order) == 0 {
		return
	}
	i := 0
	for j, route := range r.order {
		if route == r.current {
			i = (j + 1) % len(r.order)
			break
		}
	}
	_ = r.Navigate(r.order[i])
}

func (r *Router) layout() {
	w, h := r.host.Size()
	width, height := float64(w), float64(h)

	r.tabs = r.tabs[:0]
	tw := 120.0
	for i, route := range r.order {
		r.tabs = append(r.tabs, Button{
			Rect:   Rect{X: 8 + float64(i)*(tw+8), Y: 4, W: tw, H: tabBarHeight - 8},
			Label:  tabLabel(route),
			Active: route == r.current,
			Action: func() { _ = r.Navigate(route) },
		})
	}

	if widget, ok := r.widgets[r.current]; ok {
		widget.Layout(Rect{X: 0, Y: tabBarHeight, W: width, H: max(height-tabBarHeight, 0)})
	}
}

func tabLabel(route Route) string {
	switch route {
	case RouteSnake:
		return "Snake"
	case RouteCanvas:
		return "Canvas"
	default:
		return string(route)
	}
}

func (r *Router) onPointerDown(ev Event) {
	if ev.Y < tabBarHeight {
		hit(r.tabs, ev.X, ev.Y)
	}
}

func (r *Router) onKey(ev Event) {
	if ev.Key == KeyTab {
		r.Next()
	}
}

// Scene is the tab bar over the current widget.
func (r *Router) Scene() Scene {
	s := Scene{}
	if widget, ok := r.widgets[r.current]; ok {
		s.Items = append(s.Items, widget.Scene().Items...)
	}

	w, _ := r.host.Size()
	s.Add(FillRect{Rect: Rect{W: float64(w), H: tabBarHeight}, Color: tabBarColor})
	for _, tab := range r.tabs {
		tab.draw(&s, tabColor, tabActive, textColor)
	}
	return s
}

// Close unmounts the current widget and drops the router's own listeners.
func (r *Router) Close() {
	if widget, ok := r.widgets[r.current]; ok {
		widget.Unmount()
	}
	r.current = ""
	r.subs.release()
}
