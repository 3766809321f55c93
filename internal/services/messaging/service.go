package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/talentprobe/internal/check"
)

var criticalSuccessFlavor = []string{
	"Die Zwölfe sind mit dir!",
	"Phex lächelt dir zu.",
	"Davon wird man noch in der Taverne erzählen.",
	"Meisterhaft! Selbst der Meister staunt.",
}

var criticalFailureFlavor = []string{
	"Das war wohl nichts. Praios blickt weg.",
	"Autsch. Der Meister reibt sich die Hände.",
	"Ein Patzer wie aus dem Lehrbuch.",
	"Vielleicht lieber einen Heiltrank bereithalten.",
}

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting flavor lines
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetSkillCheckMessage formats the outcome of a talent check
func (s *service) GetSkillCheckMessage(ctx context.Context, input *GetSkillCheckMessageInput) (*GetSkillCheckMessageOutput, error) {
	if input == nil || input.Skill == nil || input.Outcome == nil {
		return nil, errors.New("input, skill and outcome cannot be nil")
	}

	skill := input.Skill
	outcome := input.Outcome

	var result string
	switch outcome.Label() {
	case check.LabelCriticalFailure:
		result = TextCriticalFailure
	case check.LabelCriticalSuccess:
		result = TextCriticalSuccess
	case check.LabelSuccess:
		result = fmt.Sprintf("✅ Erfolg (TaP: %d, QS: %d)", outcome.RemainingPoints, outcome.QualityLevel)
	default:
		result = fmt.Sprintf("❌ Misslungen (TaP: %d)", outcome.RemainingPoints)
	}

	details := make([]string, 0, len(outcome.Details))
	for _, detail := range outcome.Details {
		details = append(details, fmt.Sprintf("%s: geworfen %d vs benötigt %d → %s",
			detail.Attribute, detail.RolledValue, detail.RequiredValue, mark(detail.Passed)))
	}

	title := skill.Name
	if input.UsedSpecialization && skill.HasSpecialization() {
		title += " (Spez)"
	}
	title += " [" + skill.Category + "]"

	return &GetSkillCheckMessageOutput{
		Label:     fmt.Sprintf("%s [%s] – %s", skill.Name, joinAttributes(skill.GoverningAttributes), skill.Category),
		Result:    result,
		Details:   details,
		Flavor:    s.flavor(outcome.Label()),
		LogTitle:  title,
		LogResult: result,
	}, nil
}

// GetAttributeCheckMessage formats the outcome of an attribute check
func (s *service) GetAttributeCheckMessage(ctx context.Context, input *GetAttributeCheckMessageInput) (*GetAttributeCheckMessageOutput, error) {
	if input == nil || input.Outcome == nil {
		return nil, errors.New("input and outcome cannot be nil")
	}

	outcome := input.Outcome
	label := outcome.Label()

	var result, logResult string
	switch {
	case label == check.LabelCriticalFailure:
		result, logResult = TextCriticalFailure, TextCriticalFailure
	case label == check.LabelCriticalSuccess:
		result, logResult = TextCriticalSuccess, TextCriticalSuccess
	case outcome.Succeeded:
		result = fmt.Sprintf("✅ Erfolg (Δ: %+d)", outcome.Margin)
		logResult = fmt.Sprintf("✅ Erfolg (≤ %d)", outcome.Target)
	default:
		result = fmt.Sprintf("❌ Misslungen (Δ: %d)", outcome.Margin)
		logResult = fmt.Sprintf("❌ Misslungen (≤ %d)", outcome.Target)
	}

	return &GetAttributeCheckMessageOutput{
		Label:  fmt.Sprintf("Eigenschaft: %s (≤ %d)", input.Attribute, outcome.Target),
		Result: result,
		Details: []string{
			fmt.Sprintf("geworfen %d vs benötigt %d → %s", outcome.RolledValue, outcome.Target, mark(outcome.Succeeded)),
		},
		Flavor:    s.flavor(label),
		LogTitle:  fmt.Sprintf("Eigenschaft: %s", input.Attribute),
		LogResult: logResult,
	}, nil
}

// GetRollLogMessage renders a player's roll log, newest entry first
func (s *service) GetRollLogMessage(ctx context.Context, input *GetRollLogMessageInput) (*GetRollLogMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.Entries) == 0 {
		return &GetRollLogMessageOutput{
			Message: "Noch keine Würfe im Protokoll.",
		}, nil
	}

	var sb strings.Builder
	for i, entry := range input.Entries {
		if i > 0 {
			sb.WriteString("\n")
		}

		rolls := make([]string, 0, len(entry.Rolls))
		for _, roll := range entry.Rolls {
			rolls = append(rolls, fmt.Sprintf("%d", roll))
		}

		sb.WriteString(fmt.Sprintf("`%s` **%s** · %s\n", entry.Timestamp.Format("02.01. 15:04"), entry.CharacterName, entry.Title))
		sb.WriteString(fmt.Sprintf("🎲 %s → %s\n", strings.Join(rolls, ", "), entry.Result))
		for _, detail := range entry.Details {
			sb.WriteString("└ " + detail + "\n")
		}
	}

	return &GetRollLogMessageOutput{
		Message: strings.TrimRight(sb.String(), "\n"),
	}, nil
}

// GetCharacterSheetMessage renders a character's attributes and talents
func (s *service) GetCharacterSheetMessage(ctx context.Context, input *GetCharacterSheetMessageInput) (*GetCharacterSheetMessageOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.New("input and character cannot be nil")
	}

	character := input.Character

	attributes := make([]string, 0, len(check.Attributes))
	for _, attribute := range check.Attributes {
		attributes = append(attributes, fmt.Sprintf("%s %d", attribute, character.Attributes.Get(attribute)))
	}

	output := &GetCharacterSheetMessageOutput{
		Title:      character.Name,
		Attributes: strings.Join(attributes, " · "),
	}

	if !input.IncludeSkills {
		return output, nil
	}

	blocks := make(map[string]*SkillBlock)
	for _, skill := range character.Skills {
		block, ok := blocks[skill.Category]
		if !ok {
			block = &SkillBlock{Category: skill.Category}
			blocks[skill.Category] = block
			output.SkillsByCategory = append(output.SkillsByCategory, block)
		}

		line := fmt.Sprintf("%s (%s): %d", skill.Name, joinAttributes(skill.Attributes), skill.Value)
		if skill.Specialization != "" {
			line += " · Spez: " + skill.Specialization
		}
		block.Lines = append(block.Lines, line)
	}

	sort.Slice(output.SkillsByCategory, func(i, j int) bool {
		return output.SkillsByCategory[i].Category < output.SkillsByCategory[j].Category
	})

	return output, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	subject := input.Subject
	var message string
	switch input.Kind {
	case ErrorKindNoActiveCharacter:
		message = "Du hast keinen aktiven Helden. Lege mit `/dsa character new` einen an oder wähle einen mit `/dsa character select`."
	case ErrorKindCharacterExists:
		message = fmt.Sprintf("Es gibt bereits einen Helden namens %s.", quoteOr(subject, "diesem Namen"))
	case ErrorKindCharacterNotFound:
		message = fmt.Sprintf("Kein Held namens %s gefunden.", quoteOr(subject, "diesem Namen"))
	case ErrorKindInvalidName:
		message = "Bitte gib einen Namen an."
	case ErrorKindUnknownAttribute:
		message = fmt.Sprintf("Unbekannte Eigenschaft %s. Erlaubt sind MU, KL, IN, CH, FF, GE, KO und KK.", quoteOr(subject, ""))
	case ErrorKindInvalidValue:
		message = "Der Wert darf nicht negativ sein."
	case ErrorKindSkillNotFound:
		message = fmt.Sprintf("Talent %s nicht gefunden.", quoteOr(subject, ""))
	case ErrorKindSkillExists:
		message = fmt.Sprintf("Das Talent %s gibt es schon.", quoteOr(subject, ""))
	case ErrorKindInvalidSkill:
		message = "Name und Eigenschaften müssen angegeben werden!"
	case ErrorKindInvalidImport:
		message = "Die Datei konnte nicht importiert werden. Erwartet wird ein Export von `/dsa export`."
	default:
		message = "Da ist etwas schiefgelaufen. Versuch es gleich noch einmal."
	}

	return &GetErrorMessageOutput{
		Message: strings.Join(strings.Fields(message), " "),
	}, nil
}

func (s *service) flavor(label check.Label) string {
	var lines []string
	switch label {
	case check.LabelCriticalSuccess:
		lines = criticalSuccessFlavor
	case check.LabelCriticalFailure:
		lines = criticalFailureFlavor
	default:
		return ""
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return lines[s.rand.Intn(len(lines))]
}

func mark(passed bool) string {
	if passed {
		return markPassed
	}
	return markFailed
}

func joinAttributes(attributes []check.Attribute) string {
	names := make([]string, 0, len(attributes))
	for _, attribute := range attributes {
		names = append(names, string(attribute))
	}
	return strings.Join(names, "/")
}

func quoteOr(subject, fallback string) string {
	if subject == "" {
		return fallback
	}
	return "„" + subject + "“"
}
