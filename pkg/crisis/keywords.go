package crisis

// crisisKeywords is matched verbatim as lowercase substrings. Short phrases can
// match inside longer unrelated words; that is accepted, over-triggering the
// support UI is preferred over missing a signal.
var crisisKeywords = []string{
	// Direct self-harm expressions
	"suicide", "suicidal", "kill myself", "killing myself", "end my life", "end it all",
	"want to die", "wanna die", "wish i was dead", "wish i were dead", "i want to die",
	"better off dead", "ready to die", "going to kill", "planning to kill",

	// Self-harm methods
	"hang myself", "hanging myself", "cut myself", "cutting myself", "hurt myself",
	"overdose", "pills", "jump off", "jumping off", "shoot myself",

	// Emotional crisis states
	"no reason to live", "nothing to live for", "life is meaningless", "cant go on",
	"can't go on", "cant take it", "can't take it", "give up on life", "giving up",
	"no hope", "hopeless", "worthless", "nobody cares", "no one cares",
	"alone forever", "tired of living", "sick of living", "hate myself",

	// Mental health emergencies
	"mental breakdown", "breaking down", "losing my mind", "going crazy",
	"severe depression", "deeply depressed", "extreme anxiety", "panic attack",
	"crisis", "emergency", "help me please", "desperate",

	// Expressions of pain
	"unbearable pain", "too much pain", "suffering too much", "cant handle",
	"can't handle", "trapped", "helpless", "beyond help", "no way out",

	// Additional variations
	"dont want to live", "don't want to live", "not worth living",
	"everyone would be better", "burden to everyone", "world without me",
}
