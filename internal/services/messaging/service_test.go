package messaging

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/models"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
	climb   *check.SkillDefinition
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()

	s.climb = &check.SkillDefinition{
		Name:                "Klettern",
		Category:            "Körpertalente",
		GoverningAttributes: []check.Attribute{check.AttributeCourage, check.AttributeAgility, check.AttributeStrength},
		SkillValue:          4,
		Specialization:      "Fassadenklettern",
	}
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) skillMessage(rolls []int, useSpec bool) *GetSkillCheckMessageOutput {
	attributes := check.NewAttributeSet(12)
	outcome, err := check.ResolveSkillCheck(s.climb, attributes, useSpec, rolls)
	s.Require().NoError(err)

	output, err := s.service.GetSkillCheckMessage(s.ctx, &GetSkillCheckMessageInput{
		Skill:              s.climb,
		Outcome:            outcome,
		UsedSpecialization: useSpec,
	})
	s.Require().NoError(err)
	return output
}

func (s *MessagingServiceTestSuite) TestSkillCheck_Success() {
	output := s.skillMessage([]int{13, 4, 8}, false)

	s.Equal("Klettern [MU/GE/KK] – Körpertalente", output.Label)
	s.Equal("✅ Erfolg (TaP: 3, QS: 1)", output.Result)
	s.Equal([]string{
		"MU: geworfen 13 vs benötigt 12 → ✘",
		"GE: geworfen 4 vs benötigt 12 → ✔",
		"KK: geworfen 8 vs benötigt 12 → ✔",
	}, output.Details)
	s.Equal("Klettern [Körpertalente]", output.LogTitle)
	s.Equal(output.Result, output.LogResult)
	s.Empty(output.Flavor)
}

func (s *MessagingServiceTestSuite) TestSkillCheck_Failure() {
	output := s.skillMessage([]int{18, 17, 3}, false)

	s.Equal("❌ Misslungen (TaP: -1)", output.Result)
}

func (s *MessagingServiceTestSuite) TestSkillCheck_SpecializationInLogTitle() {
	output := s.skillMessage([]int{15, 15, 3}, true)

	s.Equal("✅ Erfolg (TaP: 0, QS: 0)", output.Result)
	s.Equal("Klettern (Spez) [Körpertalente]", output.LogTitle)
}

func (s *MessagingServiceTestSuite) TestSkillCheck_Criticals() {
	output := s.skillMessage([]int{1, 1, 19}, false)
	s.Equal(TextCriticalSuccess, output.Result)
	s.Contains(criticalSuccessFlavor, output.Flavor)

	output = s.skillMessage([]int{20, 20, 5}, false)
	s.Equal(TextCriticalFailure, output.Result)
	s.Contains(criticalFailureFlavor, output.Flavor)
}

func (s *MessagingServiceTestSuite) TestSkillCheck_InvalidInput() {
	_, err := s.service.GetSkillCheckMessage(s.ctx, nil)
	s.Error(err)

	_, err = s.service.GetSkillCheckMessage(s.ctx, &GetSkillCheckMessageInput{Skill: s.climb})
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestAttributeCheck() {
	tests := []struct {
		name      string
		roll      int
		result    string
		logResult string
		detail    string
	}{
		{name: "success with margin", roll: 9, result: "✅ Erfolg (Δ: +3)", logResult: "✅ Erfolg (≤ 12)", detail: "geworfen 9 vs benötigt 12 → ✔"},
		{name: "exact hit", roll: 12, result: "✅ Erfolg (Δ: +0)", logResult: "✅ Erfolg (≤ 12)", detail: "geworfen 12 vs benötigt 12 → ✔"},
		{name: "failure", roll: 15, result: "❌ Misslungen (Δ: -3)", logResult: "❌ Misslungen (≤ 12)", detail: "geworfen 15 vs benötigt 12 → ✘"},
		{name: "natural one", roll: 1, result: TextCriticalSuccess, logResult: TextCriticalSuccess, detail: "geworfen 1 vs benötigt 12 → ✔"},
		{name: "natural twenty", roll: 20, result: TextCriticalFailure, logResult: TextCriticalFailure, detail: "geworfen 20 vs benötigt 12 → ✘"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			output, err := s.service.GetAttributeCheckMessage(s.ctx, &GetAttributeCheckMessageInput{
				Attribute: check.AttributeCourage,
				Outcome:   check.ResolveAttributeCheck(12, tt.roll),
			})
			s.Require().NoError(err)

			s.Equal("Eigenschaft: MU (≤ 12)", output.Label)
			s.Equal(tt.result, output.Result)
			s.Equal(tt.logResult, output.LogResult)
			s.Equal([]string{tt.detail}, output.Details)
			s.Equal("Eigenschaft: MU", output.LogTitle)
		})
	}
}

func (s *MessagingServiceTestSuite) TestRollLog() {
	output, err := s.service.GetRollLogMessage(s.ctx, &GetRollLogMessageInput{})
	s.Require().NoError(err)
	s.Equal("Noch keine Würfe im Protokoll.", output.Message)

	output, err = s.service.GetRollLogMessage(s.ctx, &GetRollLogMessageInput{
		Entries: []*models.RollLogEntry{
			{
				CharacterName: "Alrik",
				Title:         "Eigenschaft: MU",
				Rolls:         []int{9},
				Result:        "✅ Erfolg (≤ 12)",
				Details:       []string{"geworfen 9 vs benötigt 12 → ✔"},
				Timestamp:     time.Date(2025, 4, 5, 10, 30, 0, 0, time.UTC),
			},
		},
	})
	s.Require().NoError(err)
	s.Equal("`05.04. 10:30` **Alrik** · Eigenschaft: MU\n🎲 9 → ✅ Erfolg (≤ 12)\n└ geworfen 9 vs benötigt 12 → ✔", output.Message)
}

func (s *MessagingServiceTestSuite) TestCharacterSheet() {
	character := &models.Character{
		Name:       "Alrik",
		Attributes: check.NewAttributeSet(12),
		Skills: []*models.Skill{
			{Name: "Klettern", Category: "Körpertalente", Attributes: []check.Attribute{"MU", "GE", "KK"}, Value: 4, Specialization: "Fassadenklettern"},
			{Name: "Etikette", Category: "Gesellschaftliche Talente", Attributes: []check.Attribute{"KL", "IN", "CH"}},
		},
	}
	character.Attributes[check.AttributeCourage] = 14

	output, err := s.service.GetCharacterSheetMessage(s.ctx, &GetCharacterSheetMessageInput{Character: character})
	s.Require().NoError(err)
	s.Equal("Alrik", output.Title)
	s.Equal("MU 14 · KL 12 · IN 12 · CH 12 · FF 12 · GE 12 · KO 12 · KK 12", output.Attributes)
	s.Empty(output.SkillsByCategory)

	output, err = s.service.GetCharacterSheetMessage(s.ctx, &GetCharacterSheetMessageInput{
		Character:     character,
		IncludeSkills: true,
	})
	s.Require().NoError(err)
	s.Require().Len(output.SkillsByCategory, 2)
	s.Equal("Gesellschaftliche Talente", output.SkillsByCategory[0].Category)
	s.Equal([]string{"Etikette (KL/IN/CH): 0"}, output.SkillsByCategory[0].Lines)
	s.Equal([]string{"Klettern (MU/GE/KK): 4 · Spez: Fassadenklettern"}, output.SkillsByCategory[1].Lines)
}

func (s *MessagingServiceTestSuite) TestErrorMessage() {
	output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{
		Kind:    ErrorKindSkillNotFound,
		Subject: "Fliegen",
	})
	s.Require().NoError(err)
	s.Equal("Talent „Fliegen“ nicht gefunden.", output.Message)

	output, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Kind: ErrorKindSkillNotFound})
	s.Require().NoError(err)
	s.Equal("Talent nicht gefunden.", output.Message)

	output, err = s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Kind: "something_else"})
	s.Require().NoError(err)
	s.NotEmpty(output.Message)
}
