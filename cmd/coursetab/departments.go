package main

import (
	"fmt"

	"github.com/fwojciec/coursetab"
)

// Run executes the departments command.
func (c *DepartmentsCmd) Run(deps *Dependencies) error {
	courses, err := c.load(deps, c.Paths)
	if err != nil {
		return err
	}
	for _, dept := range coursetab.DepartmentOptions(courses) {
		fmt.Fprintln(deps.Stdout, dept)
	}
	return nil
}
