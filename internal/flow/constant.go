package flow

// videoKeywords are matched against the latest user turn only: a video request
// is a per-turn intent.
var videoKeywords = []string{
	"learn",
	"explain",
	"teach me",
	"understand",
	"video",
	"watch",
	"show me how",
	"tutorial",
}

// schedulingKeywords are matched against every visible turn: a scheduling
// conversation is multi-turn, with clarifying questions between the first
// mention and the final plan.
var schedulingKeywords = []string{
	"study plan",
	"study schedule",
	"schedule",
	"calendar",
	"exam prep",
	"prepare for my exam",
	"test date",
	"plan my stud",
	"revision plan",
}
