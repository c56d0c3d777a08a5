package lucide

// Nerd Font glyph table keyed by catalog name (requires a Nerd Font to
// display correctly). Names follow the lucide convention: lowercase,
// hyphen separated. Only names with a usable terminal glyph are
// registered; this table is the whole registry.
var glyphs = map[string]string{
	"accessibility":      "",
	"activity":           "",
	"anchor":             "",
	"archive":            "",
	"arrow-down":         "",
	"arrow-left":         "",
	"arrow-left-right":   "",
	"arrow-right":        "",
	"arrow-up":           "",
	"asterisk":           "",
	"at-sign":            "",
	"award":              "",
	"ban":                "",
	"bar-chart":          "",
	"barcode":            "",
	"battery":            "",
	"battery-full":       "",
	"battery-low":        "",
	"battery-medium":     "",
	"bed":                "",
	"beer":               "",
	"bell":               "",
	"bell-off":           "",
	"bike":               "",
	"binoculars":         "",
	"bitcoin":            "",
	"bold":               "",
	"bomb":               "",
	"book":               "",
	"bookmark":           "",
	"bot":                "",
	"box":                "",
	"boxes":              "",
	"briefcase":          "",
	"bug":                "",
	"building":           "",
	"bus":                "",
	"cake":               "",
	"calculator":         "",
	"calendar":           "",
	"calendar-check":     "",
	"calendar-minus":     "",
	"calendar-plus":      "",
	"calendar-x":         "",
	"camera":             "",
	"car":                "",
	"chevron-down":       "",
	"chevron-left":       "",
	"chevron-right":      "",
	"chevron-up":         "",
	"chevrons-down":      "",
	"chevrons-left":      "",
	"chevrons-right":     "",
	"chevrons-up":        "",
	"chrome":             "",
	"circle":             "",
	"circle-alert":       "",
	"circle-check":       "",
	"circle-dot":         "",
	"circle-help":        "",
	"circle-minus":       "",
	"circle-pause":       "",
	"circle-play":        "",
	"circle-plus":        "",
	"circle-x":           "",
	"clipboard":          "",
	"clock":              "",
	"cloud":              "",
	"cloud-download":     "",
	"cloud-upload":       "",
	"code":               "",
	"coffee":             "",
	"columns":            "",
	"compass":            "",
	"contact":            "",
	"contrast":           "",
	"copy":               "",
	"copyright":          "",
	"cpu":                "",
	"credit-card":        "",
	"crop":               "",
	"crosshair":          "",
	"database":           "",
	"dollar-sign":        "",
	"download":           "",
	"droplet":            "",
	"eject":              "",
	"ellipsis":           "",
	"ellipsis-vertical":  "",
	"eraser":             "",
	"euro":               "",
	"expand":             "",
	"external-link":      "",
	"eye":                "",
	"eye-off":            "",
	"factory":            "",
	"fast-forward":       "",
	"file":               "",
	"file-archive":       "",
	"file-audio":         "",
	"file-code":          "",
	"file-image":         "",
	"file-text":          "",
	"file-video":         "",
	"film":               "",
	"filter":             "",
	"flag":               "",
	"flag-checkered":     "",
	"flame":              "",
	"flask-conical":      "",
	"folder":             "",
	"folder-open":        "",
	"frown":              "",
	"gamepad":            "",
	"gauge":              "",
	"gavel":              "",
	"gift":               "",
	"git-branch":         "",
	"git-commit":         "",
	"git-fork":           "",
	"git-merge":          "",
	"github":             "",
	"globe":              "",
	"graduation-cap":     "",
	"grid":               "",
	"group":              "",
	"hand":               "",
	"hard-drive":         "",
	"hash":               "",
	"headphones":         "",
	"heading":            "",
	"heart":              "",
	"heart-pulse":        "",
	"home":               "",
	"hospital":           "",
	"hourglass":          "",
	"image":              "",
	"inbox":              "",
	"indian-rupee":       "",
	"info":               "",
	"instagram":          "",
	"italic":             "",
	"japanese-yen":       "",
	"key":                "",
	"keyboard":           "",
	"landmark":           "",
	"laptop":             "",
	"leaf":               "",
	"lemon":              "",
	"lightbulb":          "",
	"link":               "",
	"list":               "",
	"list-checks":        "",
	"list-ordered":       "",
	"loader":             "",
	"lock":               "",
	"log-in":             "",
	"log-out":            "",
	"magnet":             "",
	"mail":               "",
	"map":                "",
	"map-pin":            "",
	"martini":            "",
	"maximize":           "",
	"megaphone":          "",
	"meh":                "",
	"menu":               "",
	"message-circle":     "",
	"messages-square":    "",
	"mic":                "",
	"mic-off":            "",
	"minimize":           "",
	"minus":              "",
	"monitor":            "",
	"moon":               "",
	"mouse-pointer":      "",
	"music":              "",
	"navigation":         "",
	"network":            "",
	"newspaper":          "",
	"paintbrush":         "",
	"paperclip":          "",
	"pause":              "",
	"paw-print":          "",
	"pencil":             "",
	"percent":            "",
	"phone":              "",
	"pie-chart":          "",
	"pilcrow":            "",
	"pin":                "",
	"pipette":            "",
	"plane":              "",
	"play":               "",
	"plug":               "",
	"plus":               "",
	"pointer":            "",
	"pound-sterling":     "",
	"power":              "",
	"printer":            "",
	"puzzle":             "",
	"qr-code":            "",
	"quote":              "",
	"recycle":            "",
	"refresh-cw":         "",
	"repeat":             "",
	"reply":              "",
	"reply-all":          "",
	"rewind":             "",
	"rocket":             "",
	"rotate-cw":          "",
	"rss":                "",
	"russian-ruble":      "",
	"save":               "",
	"scale":              "",
	"scissors":           "",
	"search":             "",
	"send":               "",
	"server":             "",
	"settings":           "",
	"share":              "",
	"share-2":            "",
	"shield":             "",
	"shopping-bag":       "",
	"shopping-cart":      "",
	"shuffle":            "",
	"signal":             "",
	"signpost":           "",
	"skip-back":          "",
	"skip-forward":       "",
	"slack":              "",
	"sliders-horizontal": "",
	"smartphone":         "",
	"smile":              "",
	"snowflake":          "",
	"square":             "",
	"square-check":       "",
	"square-minus":       "",
	"square-pen":         "",
	"square-plus":        "",
	"star":               "",
	"stethoscope":        "",
	"sticky-note":        "",
	"sun":                "",
	"table":              "",
	"tablet":             "",
	"tag":                "",
	"tags":               "",
	"target":             "",
	"terminal":           "",
	"text-cursor":        "",
	"thermometer":        "",
	"thumbs-down":        "",
	"thumbs-up":          "",
	"ticket":             "",
	"toggle-left":        "",
	"toggle-right":       "",
	"train":              "",
	"trash":              "",
	"tree-pine":          "",
	"trophy":             "",
	"truck":              "",
	"tv":                 "",
	"type":               "",
	"umbrella":           "",
	"underline":          "",
	"undo":               "",
	"unlink":             "",
	"unlock":             "",
	"upload":             "",
	"user":               "",
	"user-plus":          "",
	"user-x":             "",
	"users":              "",
	"utensils":           "",
	"video":              "",
	"volume-1":           "",
	"volume-2":           "",
	"volume-x":           "",
	"wand":               "",
	"wifi":               "",
	"wrench":             "",
	"x":                  "",
	"youtube":            "",
	"zap":                "",
	"zoom-in":            "",
	"zoom-out":           "",
}
