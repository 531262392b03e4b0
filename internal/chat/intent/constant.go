package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.chat.intent.Classify"
)

// SentinelTitle is the lowercased title of the seed task the frontend
// shows to new users. It is never a match target.
const SentinelTitle = "welcome to ai todo!"

// titleCutset is trimmed from both ends of extracted titles.
const titleCutset = "\"'.,!?"

// renameSeparator splits "rename <old> to <new>".
const renameSeparator = " to "

// minTitleRunes is the shortest accepted title for a new task, exclusive.
const minTitleRunes = 2

// Trigger words per branch, matched as substrings of the lowercased message.
var (
	completeTriggers = []string{"mark", "complete", "done", "finish"}
	updateTriggers   = []string{"rename", "change", "update", "edit"}
	addTriggers      = []string{"add", "create", "new task", "remind me"}
	deleteTriggers   = []string{"delete", "remove"}

	// listingWords mark messages that ask to see tasks rather than add one.
	listingWords = []string{"show", "list", "view"}
)

// addPhrases are stripped from the message to get the new task title.
// Order matters: the first phrase present wins.
var addPhrases = []string{
	"add task to ",
	"add task ",
	"add ",
	"create ",
	"remind me to ",
	"new task ",
}
