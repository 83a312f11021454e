// Package state holds the configuration data that the components render:
// the state tree (selected language, language menu params, screensaver
// settings) and the language list.
//
// All of it is owned by the parent controller. Tree.With returns updated
// copies instead of mutating, so a view built from an older tree keeps
// describing what it was built from. Nothing here writes files back.
package state
