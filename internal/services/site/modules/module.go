// Package modules defines the site module registry.
package modules

import (
	module "github.com/mvaleri/atrium/internal/services/site/module"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies aliases the collaborators handed to modules at mount time.
type Dependencies = module.Dependencies
