package catalog

import (
	"context"
	"fmt"
	"slices"
)

// Check is one runnable behavior from the catalogue.
type Check struct {
	Topic string
	Name  string
	Run   func(context.Context) error
}

// ID returns "topic/name".
func (c Check) ID() string {
	return c.Topic + "/" + c.Name
}

// Registry is an ordered set of checks. It is not safe for concurrent
// registration; build it up front and read it from anywhere.
type Registry struct {
	checks []Check
	ids    map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Register adds checks in order. It stops at the first invalid or duplicate
// check; checks before it stay registered.
func (r *Registry) Register(checks ...Check) error {
	for _, c := range checks {
		if c.Topic == "" || c.Name == "" || c.Run == nil {
			return fmt.Errorf("%w: %q", ErrInvalidCheck, c.ID())
		}
		if _, ok := r.ids[c.ID()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCheck, c.ID())
		}
		r.ids[c.ID()] = struct{}{}
		r.checks = append(r.checks, c)
	}
	return nil
}

// Checks returns every registered check in registration order.
func (r *Registry) Checks() []Check {
	return slices.Clone(r.checks)
}

// Topics returns the distinct topics in sorted order.
func (r *Registry) Topics() []string {
	var topics []string
	for _, c := range r.checks {
		if !slices.Contains(topics, c.Topic) {
			topics = append(topics, c.Topic)
		}
	}
	slices.Sort(topics)
	return topics
}

// Select returns the checks of the given topics in registration order.
// No topics selects everything.
func (r *Registry) Select(topics ...string) ([]Check, error) {
	if len(topics) == 0 {
		return r.Checks(), nil
	}

	known := r.Topics()
	for _, t := range topics {
		if !slices.Contains(known, t) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, t)
		}
	}

	var out []Check
	for _, c := range r.checks {
		if slices.Contains(topics, c.Topic) {
			out = append(out, c)
		}
	}
	return out, nil
}
