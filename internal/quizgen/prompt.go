package quizgen

import (
	"fmt"
	"strings"

	"github.com/minhtc/opicly/internal/catalog"
)

// blankMarker is the placeholder every generated sentence must contain.
const blankMarker = "_____"

const systemPrompt = "You are an expert OPIC test creator with deep knowledge of English grammar and OPIC assessment standards. Create high-quality, authentic OPIC-style questions with accurate Vietnamese explanations."

const (
	maxGrammarPoints    = 8
	maxCulturalContexts = 5
	maxSpeakingTasks    = 5
	maxContextTasks     = 3
)

// BuildPrompt assembles the generation prompt for a validated request.
// The output is deterministic for a given request and level.
func BuildPrompt(req Request, level catalog.Level) string {
	grammar := req.GrammarFocus
	if len(grammar) == 0 {
		grammar = level.GrammarFocus
	}
	grammar = capList(grammar, maxGrammarPoints)
	grammarList := strings.Join(grammar, ", ")

	progression := "Consistent difficulty appropriate for " + req.Level
	progressionClose := "consistent appropriate difficulty"
	if req.DifficultyProgression {
		progression = "Progressive difficulty (questions 1-3 easier, 4-7 medium, 8-10 harder)"
		progressionClose = "clear progression in difficulty"
	}

	culture := "Focus on grammatical accuracy"
	if req.CulturalContext {
		culture = "Test cultural knowledge and situational appropriateness"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d comprehensive OPIC %s (%s) English fill-in-the-blank questions for the topic: %q.\n\n",
		req.Count, req.Level, level.Name, req.Topic)

	fmt.Fprintf(&b, "CRITICAL OPIC %s REQUIREMENTS:\n", req.Level)
	fmt.Fprintf(&b, "1. Questions must reflect ACTUAL OPIC %s difficulty and assessment criteria\n", req.Level)
	fmt.Fprintf(&b, "2. Cover key grammar patterns: %s\n", grammarList)
	fmt.Fprintf(&b, "3. Use vocabulary and sentence structures appropriate for: %s\n", level.Description)
	b.WriteString("4. Each question should test different specific grammar points from the focus list\n")
	fmt.Fprintf(&b, "5. %s\n", progression)
	b.WriteString("6. Include realistic OPIC speaking test contexts and scenarios\n")
	fmt.Fprintf(&b, "7. %s\n\n", culture)

	fmt.Fprintf(&b, "TOPIC FOCUS: %q - All questions must relate to this topic area\n", req.Topic)
	fmt.Fprintf(&b, "LEVEL DESCRIPTION: %s\n", level.Description)
	fmt.Fprintf(&b, "GRAMMAR PATTERNS TO TEST: %s\n", grammarList)
	fmt.Fprintf(&b, "CULTURAL CONTEXTS: %s\n", strings.Join(capList(level.CulturalContexts, maxCulturalContexts), ", "))
	fmt.Fprintf(&b, "SPEAKING TASKS: %s\n\n", strings.Join(capList(level.SpeakingTasks, maxSpeakingTasks), ", "))

	fmt.Fprintf(&b, "QUALITY STANDARDS FOR OPIC %s:\n", req.Level)
	b.WriteString("- Sentences must sound natural in real OPIC interview contexts\n")
	fmt.Fprintf(&b, "- Grammar complexity appropriate for %s proficiency level\n", req.Level)
	fmt.Fprintf(&b, "- Wrong answers should represent common %s student errors\n", req.Level)
	b.WriteString("- Cultural contexts should be appropriate for international test-takers\n")
	fmt.Fprintf(&b, "- Vocabulary level should match OPIC %s expectations\n", req.Level)
	b.WriteString("- Test both grammatical accuracy and pragmatic appropriateness\n\n")

	fmt.Fprintf(&b, "DIFFICULTY INDICATORS FOR %s:\n", req.Level)
	for _, indicator := range level.DifficultyIndicators {
		fmt.Fprintf(&b, "- %s\n", indicator)
	}
	b.WriteString("\n")

	b.WriteString("For each question provide:\n")
	fmt.Fprintf(&b, "- sentence: Natural, conversational sentence with ONE blank (use %s for blank)\n", blankMarker)
	b.WriteString("- correctAnswer: Grammatically correct answer (single word or short phrase)\n")
	b.WriteString("- explanation: Detailed Vietnamese explanation including:\n")
	b.WriteString("  * Specific grammar rule being tested and why\n")
	fmt.Fprintf(&b, "  * Why this answer demonstrates OPIC %s proficiency\n", req.Level)
	b.WriteString("  * Common mistakes students make at this level\n")
	b.WriteString("  * How this grammar point appears in OPIC speaking contexts\n")
	b.WriteString("  * Cultural or pragmatic information if relevant\n")
	fmt.Fprintf(&b, "  * Connection to %s topic area\n", req.Topic)
	b.WriteString("- wrongAnswers: Exactly 4 plausible incorrect options that represent:\n")
	fmt.Fprintf(&b, "  * Common grammar mistakes at %s level\n", req.Level)
	fmt.Fprintf(&b, "  * Vocabulary confusion typical for %s students\n", req.Level)
	b.WriteString("  * False friends or similar structures from other levels\n")
	b.WriteString("  * Overgeneralization errors from simpler grammar rules\n\n")

	b.WriteString("CONTEXT REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Use realistic %s scenarios that could appear in OPIC interviews\n", req.Topic)
	b.WriteString("- Include appropriate register and formality for the situation\n")
	b.WriteString("- Ensure cultural sensitivity and international relevance\n")
	fmt.Fprintf(&b, "- Connect to typical OPIC speaking tasks: %s\n\n", strings.Join(capList(level.SpeakingTasks, maxContextTasks), ", "))

	fmt.Fprintf(&b, "Generate exactly %d questions as a valid JSON array. Ensure variety in grammar points tested and %s.\n\n",
		req.Count, progressionClose)

	fmt.Fprintf(&b, "EXAMPLE FORMAT (adapt complexity for %s):\n", req.Level)
	fmt.Fprintf(&b, `{
  "sentence": "When discussing %s in an OPIC interview, this approach %s the most effective results.",
  "correctAnswer": "produces",
  "explanation": "Giải thích OPIC %s: Câu hỏi này kiểm tra khả năng sử dụng động từ 'produce' trong ngữ cảnh chuyên môn về %s. Ở mức OPIC %s, thí sinh cần thành thạo việc diễn đạt kết quả và hiệu quả. 'Produce results' là collocation quan trọng trong tiếng Anh chuyên nghiệp. Sai lầm phổ biến ở level này là dùng 'make' hoặc 'create' thay vì 'produce'.",
  "wrongAnswers": ["makes", "creates", "gives", "brings"]
}`, strings.ToLower(req.Topic), blankMarker, req.Level, req.Topic, req.Level)

	return b.String()
}

func capList(items []string, max int) []string {
	if len(items) > max {
		return items[:max]
	}
	return items
}
