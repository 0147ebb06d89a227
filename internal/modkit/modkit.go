package modkit

import "salesboard/internal/modkit/module"

// Module is the surface every API area implements
type Module = module.Module

// Builder constructs a Module from shared deps and options
// areas expose New(deps Deps, opts ...Option) Module matching this shape
type Builder func(Deps, ...Option) Module
