package urls

// Project links shown in help text and troubleshooting tips.

// Repository is the Peppy Player source repository.
const Repository = "https://github.com/project-owner/Peppy"

// Wiki is the Peppy Player documentation, including the configuration
// file reference and the screensaver settings.
const Wiki = "https://github.com/project-owner/Peppy/wiki"
