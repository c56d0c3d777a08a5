package styles

// Nerd Font icons for the UI chrome (requires a Nerd Font to display
// correctly). These are interface glyphs, not catalog icons; the
// pickable catalog lives in internal/infrastructure/lucide.
const (
	IconSearch  = "" // magnifier
	IconSliders = "" // sliders (config panel)
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info
	IconReset   = "" // rotate-left

	// Navigation
	IconCursor       = "" // chevron-right
	IconChevronLeft  = "" // prev page
	IconChevronRight = "" // next page

	// Toggles
	IconCheckboxEmpty   = "" // unchecked
	IconCheckboxChecked = "" // checked

	// Host chrome
	IconDatabase = "" // record store
	IconConfig   = "" // config file
	IconFolder   = "" // folder

	// About
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher
)
