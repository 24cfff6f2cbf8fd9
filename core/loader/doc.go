// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its name,
// whether it is enabled and its route registration.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps registered features in order and loads the enabled ones
// with LoadAll. Features such as 'tables' and 'assets' are developed and
// tested in isolation and only meet in the start command.
package loader
