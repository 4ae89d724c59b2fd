// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import (
	"fmt"

	"github.com/pdiddy/interview-engine/pkg/types"
)

// themeTemplates maps a theme id to its dedicated question list. Only the
// first maxThemeQuestions entries are used. Unknown ids fall back to
// genericThemeQuestions.
var themeTemplates = map[string][]string{
	"family": {
		"Can you describe the family you grew up in?",
		"What traditions or habits did your family pass down to you?",
		"How has your role in your family changed over the years?",
	},
	"resilience": {
		"Can you tell me about a time you had to start over?",
		"Where did you find strength when things were at their hardest?",
		"What would you tell someone facing what you faced?",
		"Who helped you keep going?",
	},
	"loss": {
		"Can you tell me about someone you have lost and what they meant to you?",
		"How did you carry on in the days after?",
		"What do you do now to remember them?",
	},
	"identity": {
		"How would you describe who you are to someone meeting you for the first time?",
		"When did you first feel like you knew who you were?",
		"What parts of yourself have you had to fight to keep?",
	},
	"migration": {
		"Can you tell me about the place you left behind?",
		"What was the journey itself like?",
		"What surprised you most when you arrived?",
	},
	"community": {
		"Can you describe the neighborhood or community you belonged to?",
		"Who were the people everyone turned to?",
		"How has that community changed since then?",
	},
}

const maxThemeQuestions = 3

// genericThemeQuestions builds the fallback set for a theme without a
// dedicated template list.
func genericThemeQuestions(name string) []string {
	return []string{
		fmt.Sprintf("What does %s mean to you personally?", name),
		fmt.Sprintf("Can you tell me about a time when %s played an important role in your life?", name),
		fmt.Sprintf("How has your understanding of %s changed over the years?", name),
	}
}

// characterTemplates is formatted with the character's name. Only the first
// charactersPerItem templates are used per character.
var characterTemplates = []string{
	"Tell me about %s. What were they like?",
	"How did %s influence the person you became?",
	"What is your favorite memory of %s?",
	"If you could say one thing to %s today, what would it be?",
}

const charactersPerItem = 2

// timelineTemplate is formatted with the event title.
const timelineTemplate = "Can you walk me through what happened during %s?"

// emotionTemplates maps an emotion tag to its question. Unknown emotions use
// genericEmotionQuestion.
var emotionTemplates = map[string]string{
	"joy":     "Can you tell me about a moment of pure joy you still remember clearly?",
	"sadness": "Can you share a time of sadness that shaped who you are?",
	"fear":    "Can you tell me about a time you were truly afraid?",
	"anger":   "What is something that made you angry, and how did you handle it?",
	"love":    "Can you tell me about a time you felt deeply loved?",
	"hope":    "What kept your hope alive during uncertain times?",
	"pride":   "What is the accomplishment you are most proud of?",
}

// highSensitivityEmotions are the emotions whose beat questions are rated high.
var highSensitivityEmotions = map[string]bool{
	"sadness": true,
	"fear":    true,
	"anger":   true,
}

func genericEmotionQuestion(emotion string) string {
	return fmt.Sprintf("Can you tell me about the moments in your story that made you feel %s?", emotion)
}

// topicTemplate is the question and interviewer note for a sensitive topic.
type topicTemplate struct {
	question string
	notes    string
}

// topicTemplates maps a sensitive topic id to its question. Unknown ids use
// genericTopicTemplate.
var topicTemplates = map[string]topicTemplate{
	"death": {
		question: "If you feel comfortable, can you share how the passing of someone close affected you?",
		notes:    "Mourning customs and how openly death is discussed vary widely; let the interviewee lead.",
	},
	"illness": {
		question: "If you are willing, can you tell me how illness touched your life or your family's?",
		notes:    "Some families treat illness as private; confirm what may be recorded before going further.",
	},
	"divorce": {
		question: "If you're comfortable, can you talk about how the end of that marriage changed things for you?",
		notes:    "Divorce can carry stigma in some communities; avoid assigning responsibility to either party.",
	},
	"war": {
		question: "If you are able to, can you tell me what life was like during the war?",
		notes:    "Conflict memories may involve trauma or political allegiance; offer breaks and avoid pressing for detail.",
	},
	"addiction": {
		question: "If you feel ready, can you share how addiction affected you or the people around you?",
		notes:    "Addiction is often hidden for legal or family reasons; reassure the interviewee about consent and anonymity.",
	},
}

func genericTopicTemplate(topic string) topicTemplate {
	return topicTemplate{
		question: fmt.Sprintf("If you feel comfortable, can you share your experience with %s?", topic),
		notes:    fmt.Sprintf("Approach %s with care; norms around discussing it differ between cultures and families.", topic),
	}
}

// openingQuestions and closingQuestions bracket every question bank.
var openingQuestions = []fixedQuestion{
	{
		id:       "opening-1",
		question: "Thank you for sitting down with me today. Could you start by telling me a little about yourself?",
		category: types.CategoryPersonal,
		context:  "Warm-up question to build rapport",
		duration: 3,
		impact:   0.1,
		value:    0.3,
	},
	{
		id:       "opening-2",
		question: "What made you want to share your story?",
		category: types.CategoryContextual,
		context:  "Establishes the interviewee's motivation",
		duration: 3,
		impact:   0.2,
		value:    0.5,
	},
}

var closingQuestions = []fixedQuestion{
	{
		id:       "closing-1",
		question: "Looking back on everything we've talked about, what stands out to you the most?",
		category: types.CategoryReflective,
		context:  "Invites reflection on the whole conversation",
		duration: 4,
		impact:   0.4,
		value:    0.7,
	},
	{
		id:       "closing-2",
		question: "Is there anything else you would like to share that we haven't covered?",
		category: types.CategoryReflective,
		context:  "Gives the interviewee the last word",
		duration: 3,
		impact:   0.3,
		value:    0.5,
	},
}

type fixedQuestion struct {
	id       string
	question string
	category types.QuestionCategory
	context  string
	duration int
	impact   float64
	value    float64
}
