// Package packaging defines the entities of the packaging debug workflow:
// products, the packages a strategy groups them into, strategy descriptors,
// the Context that binds a strategy to the packaging operation, and the
// declarative selection form rendered for developers.
package packaging

// SettingsKeyStrategy is the settings store key holding the selected
// strategy id.
const SettingsKeyStrategy = "packaging.settings:strategy"
