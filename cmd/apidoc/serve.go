package main

import "fmt"

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if deps.Server == nil {
		return fmt.Errorf("server not configured")
	}
	return deps.Server.ListenAndServe(deps.Ctx, c.Addr)
}
