package content

import "silentvoices/internal/types"

// Lesson is one step of a guided learning path. Completing a lesson is
// recorded on the profile by id.
type Lesson struct {
	ID      string
	Day     int
	Title   string
	Message string
	Action  string
}

// FamilyFriendsPath is the seven-day path for supporters.
var FamilyFriendsPath = []Lesson{
	{
		ID:      "ff_1",
		Day:     1,
		Title:   "The Three C’s",
		Message: "You need to hear this early and often: You didn't Cause it, you can't Control it, and you can't Cure it.",
		Action:  "Write down one thing you tried to 'fix' for your loved one this week. Acknowledge that you are letting go of the responsibility for that specific outcome today.",
	},
	{
		ID:      "ff_2",
		Day:     2,
		Title:   "The Hijacked Brain",
		Message: "Addiction isn't a lack of willpower; it’s a physiological change. When they lie or act out, it’s often the 'addictive voice' protecting its supply, not the person you love.",
		Action:  "Try to separate the person from the disease. Today, when you feel angry, say to yourself: 'I love the person, I hate the disease.'",
	},
	{
		ID:      "ff_3",
		Day:     3,
		Title:   "Support vs. Enabling",
		Message: "Enabling is doing things for them that they are capable of doing. Supporting is helping them get to a meeting or listening when they are sober.",
		Action:  "Review your Support Action Planner. Is there anything you are doing that is actually preventing them from feeling the consequences of their actions?",
	},
	{
		ID:      "ff_4",
		Day:     4,
		Title:   "Setting Micro-Boundaries",
		Message: "Boundaries aren't about changing their behavior; they are about protecting yours. Example: 'I will not have a conversation with you when you have been drinking/using.'",
		Action:  "Define one 'Micro-Boundary' you will stick to this week. Commit to it in your journal.",
	},
	{
		ID:      "ff_5",
		Day:     5,
		Title:   "The Oxygen Mask",
		Message: "You cannot pour from an empty cup. If you are physically and mentally exhausted, you are less effective as a support person.",
		Action:  "Complete your first Self-Care Plan entry. Choose one activity (a walk, a book, a bath) that is just for you—not related to recovery.",
	},
	{
		ID:      "ff_6",
		Day:     6,
		Title:   "Communicating with \"I\"",
		Message: "Avoid 'You' statements which trigger defensiveness. Use 'I' statements: 'I feel lonely and hurt when you aren't present at dinner.'",
		Action:  "Practice one 'I' statement today, even if it's just in your head or in your journal.",
	},
	{
		ID:      "ff_7",
		Day:     7,
		Title:   "Marathon, Not a Sprint",
		Message: "Recovery is non-linear. There will be good days and bad days. Success is measured by long-term patterns, not 24-hour windows.",
		Action:  "Look at the Trust Bubble. If it's Amber or Red today, take a deep breath and return to Day 1: You didn't cause this.",
	},
}

// LessonsForRole returns the guided path for a role. Only the supporter
// path exists today; other roles learn through the resource library.
func LessonsForRole(role types.Role) []Lesson {
	if role == types.RoleFamilyFriend {
		return FamilyFriendsPath
	}
	return nil
}

// FindLesson looks a lesson up by id across all paths.
func FindLesson(id string) (Lesson, bool) {
	for _, l := range FamilyFriendsPath {
		if l.ID == id {
			return l, true
		}
	}
	return Lesson{}, false
}
