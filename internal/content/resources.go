package content

// ResourceCategory groups resource library articles.
type ResourceCategory string

const (
	ResourceBasics        ResourceCategory = "BASICS"
	ResourceCommunication ResourceCategory = "COMMUNICATION"
	ResourceBoundary      ResourceCategory = "BOUNDARY"
	ResourceSelfCare      ResourceCategory = "SELF_CARE"
	ResourceCrisis        ResourceCategory = "CRISIS"
)

// Resource is a static library article.
type Resource struct {
	ID          string
	Category    ResourceCategory
	Title       string
	Description string
	IsPremium   bool
	Content     string
	Icon        string
}

// ResourceLibrary is the static article catalog shown on the support
// screen. Premium entries are listed but gated at the presentation layer.
var ResourceLibrary = []Resource{
	{
		ID:          "lib_1",
		Category:    ResourceBasics,
		Title:       "The Hijacked Brain",
		Description: "Learn how dopamine pathways change during addiction.",
		Icon:        "🧠",
		Content:     "Addiction isn't a lack of willpower; it's a physiological change in the brain's reward system. When a person uses a substance, the brain is flooded with dopamine, the 'pleasure' chemical. Over time, the brain adjusts by reducing its natural dopamine production, making it hard for the person to feel joy from normal activities. This 'hijacking' creates a drive to use that is as fundamental as hunger or thirst.",
	},
	{
		ID:          "lib_2",
		Category:    ResourceBasics,
		Title:       "The 3 C’s Reminder",
		Description: "Crucial pinned article for every family member.",
		Icon:        "📌",
		Content:     "One of the most powerful realizations in your journey is accepting the Three C's: 1. You didn't Cause it. No matter what happened in the past, addiction is a complex disease. 2. You can't Control it. Their choices and their struggle are their own. 3. You can't Cure it. Recovery must come from their own inner commitment and professional support.",
	},
	{
		ID:          "lib_3",
		Category:    ResourceBasics,
		Title:       "Addiction Dictionary",
		Description: "Understand the clinical reality and terminology.",
		IsPremium:   true,
		Icon:        "📖",
		Content:     "A glossary of terms to bridge the gap between families and clinical professionals. \n- PAWS: Post-Acute Withdrawal Syndrome.\n- Tolerance: The need for more to achieve the same effect.\n- Withdrawal: The physical and mental distress of cessation.",
	},
	{
		ID:          "lib_4",
		Category:    ResourceCommunication,
		Title:       "\"I\" Statement Templates",
		Description: "Fill-in-the-blank scripts for common scenarios.",
		Icon:        "💬",
		Content:     "Scenario: Late home for dinner.\n'I feel lonely and hurt when you aren't present at dinner because I value our time together.' This approach avoids triggering defensiveness by focusing on your experience rather than their failure.",
	},
	{
		ID:          "lib_5",
		Category:    ResourceCommunication,
		Title:       "Conflict Script Generator",
		Description: "Advanced AI-powered script generator for high-stress talks.",
		IsPremium:   true,
		Icon:        "⚡",
		Content:     "Our AI-powered tool analyzes your specific situation and generates custom scripts that follow the best practices of non-violent communication and CRAFT therapy. (Full tool available to Premium members).",
	},
	{
		ID:          "lib_6",
		Category:    ResourceBoundary,
		Title:       "Enabling vs. Supporting",
		Description: "Diagnostic quiz to identify your behavior patterns.",
		Icon:        "⚖️",
		Content:     "Supporting is helping them get to a meeting. Enabling is paying their rent so they don't have to face the consequence of spending their money on substances. Take this time to reflect: Are you preventing them from feeling the weight of their choices?",
	},
	{
		ID:          "lib_7",
		Category:    ResourceBoundary,
		Title:       "The Art of \"No\"",
		Description: "Audio-led guides for setting compassionate limits.",
		IsPremium:   true,
		Icon:        "🎙️",
		Content:     "Practice these phrases: 'I love you, but I will not allow drugs in my house.' 'I will not have this conversation while you are intoxicated.' Consistency is the key to a healthy boundary.",
	},
	{
		ID:          "lib_8",
		Category:    ResourceSelfCare,
		Title:       "Identifying Burnout",
		Description: "Checklist for caregiver fatigue and overwhelm.",
		Icon:        "🕯️",
		Content:     "Symptoms of caregiver fatigue include chronic exhaustion, loss of interest in your own hobbies, and feeling constantly 'on edge'. If you identify these, it is time to put on your own oxygen mask first.",
	},
	{
		ID:          "lib_9",
		Category:    ResourceSelfCare,
		Title:       "Advanced CRAFT Training",
		Description: "Deep-dive into Community Reinforcement and Family Training.",
		IsPremium:   true,
		Icon:        "🎓",
		Content:     "A comprehensive course on using positive reinforcement to encourage your loved one toward treatment while maintaining your own sanity. Developed by leading psychologists.",
	},
	{
		ID:          "lib_10",
		Category:    ResourceCrisis,
		Title:       "The Relapse Protocol",
		Description: "Step-by-step guide for the first 48 hours of a slip.",
		Icon:        "🛡️",
		Content:     "1. Stay calm. Your reaction can escalate the situation. 2. Ensure safety. 3. Do not engage in deep conversations while they are under the influence. 4. Re-evaluate your boundaries once they are sober.",
	},
}

// FindResource looks a library article up by id.
func FindResource(id string) (Resource, bool) {
	for _, r := range ResourceLibrary {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}

// Contact is a static helpline entry for the recovery phone book.
type Contact struct {
	ID     string
	Name   string
	Role   string
	Phone  string
	Region string
}

// ResourceContacts is the recovery phone book.
var ResourceContacts = []Contact{
	{ID: "r1", Name: "NHS 111 (UK)", Role: "Medical Advice", Phone: "111", Region: "UK"},
	{ID: "r2", Name: "Samaritans (UK)", Role: "Emotional Support", Phone: "116123", Region: "UK"},
	{ID: "r3", Name: "FRANK (UK)", Role: "Addiction Info", Phone: "03001236600", Region: "UK"},
	{ID: "r4", Name: "SAMHSA (USA)", Role: "Treatment Referral", Phone: "1-800-662-4357", Region: "USA"},
	{ID: "r5", Name: "Crisis Text Line", Role: "Global SMS", Phone: "741741", Region: "Global"},
	{ID: "r6", Name: "AA / NA Global", Role: "Peer Support", Phone: "Online Directory", Region: "Global"},
}
