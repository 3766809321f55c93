package character

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/talentprobe/internal/catalog"
	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/common/clock"
	"github.com/KirkDiggler/talentprobe/internal/common/uuid"
	"github.com/KirkDiggler/talentprobe/internal/dice"
	"github.com/KirkDiggler/talentprobe/internal/models"
	characterRepo "github.com/KirkDiggler/talentprobe/internal/repositories/character"
	rollLogRepo "github.com/KirkDiggler/talentprobe/internal/repositories/roll_log"
	"github.com/KirkDiggler/talentprobe/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	defaultAttributeValue int
	catalog               *catalog.Catalog
	characterRepo         characterRepo.Repository
	rollLogRepo           rollLogRepo.Repository
	messaging             messaging.Service
	diceRoller            dice.Roller
	clock                 clock.Clock
	uuidGenerator         uuid.UUID
}

// New creates a new character service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Catalog == nil {
		return nil, ErrNilCatalog
	}
	if cfg.CharacterRepo == nil {
		return nil, ErrNilCharacterRepo
	}
	if cfg.RollLogRepo == nil {
		return nil, ErrNilRollLogRepo
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessagingService
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.DefaultAttributeValue < 0 {
		return nil, ErrInvalidDefaultAttribute
	}

	defaultValue := cfg.DefaultAttributeValue
	if defaultValue == 0 {
		defaultValue = DefaultAttributeValue
	}

	return &service{
		defaultAttributeValue: defaultValue,
		catalog:               cfg.Catalog,
		characterRepo:         cfg.CharacterRepo,
		rollLogRepo:           cfg.RollLogRepo,
		messaging:             cfg.Messaging,
		diceRoller:            cfg.DiceRoller,
		clock:                 cfg.Clock,
		uuidGenerator:         cfg.UUIDGenerator,
	}, nil
}

// CreateCharacter creates a character and selects it
func (s *service) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CreateCharacterOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	_, err := s.characterRepo.GetCharacterByName(ctx, &characterRepo.GetCharacterByNameInput{
		OwnerID: input.OwnerID,
		Name:    name,
	})
	if err == nil {
		return nil, ErrCharacterExists
	}
	if !errors.Is(err, characterRepo.ErrCharacterNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	character := &models.Character{
		ID:         s.uuidGenerator.NewUUID(),
		OwnerID:    input.OwnerID,
		Name:       name,
		Attributes: check.NewAttributeSet(s.defaultAttributeValue),
		Skills:     s.catalog.Skills(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{
		Character: character,
	}); err != nil {
		return nil, err
	}

	if err := s.characterRepo.SetActiveCharacter(ctx, &characterRepo.SetActiveCharacterInput{
		OwnerID:     input.OwnerID,
		CharacterID: character.ID,
	}); err != nil {
		return nil, err
	}

	return &CreateCharacterOutput{
		Character: character,
	}, nil
}

// DeleteCharacter removes a character
func (s *service) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteCharacterOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	active, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil && !errors.Is(err, ErrNoActiveCharacter) {
		return nil, err
	}

	err = s.characterRepo.DeleteCharacter(ctx, &characterRepo.DeleteCharacterInput{
		OwnerID: input.OwnerID,
		Name:    name,
	})
	if err != nil {
		if errors.Is(err, characterRepo.ErrCharacterNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}

	if active != nil && !strings.EqualFold(active.Name, name) {
		return &DeleteCharacterOutput{
			ActiveCharacterName: active.Name,
		}, nil
	}

	// The selected character is gone, fall back to the first remaining one
	remaining, err := s.characterRepo.ListCharacters(ctx, &characterRepo.ListCharactersInput{
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	if len(remaining.Characters) == 0 {
		return &DeleteCharacterOutput{}, nil
	}

	next := remaining.Characters[0]
	if err := s.characterRepo.SetActiveCharacter(ctx, &characterRepo.SetActiveCharacterInput{
		OwnerID:     input.OwnerID,
		CharacterID: next.ID,
	}); err != nil {
		return nil, err
	}

	return &DeleteCharacterOutput{
		ActiveCharacterName: next.Name,
	}, nil
}

// ListCharacters returns an owner's characters and the selected one
func (s *service) ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.characterRepo.ListCharacters(ctx, &characterRepo.ListCharactersInput{
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	var activeName string
	active, err := s.activeCharacter(ctx, input.OwnerID)
	switch {
	case err == nil:
		activeName = active.Name
	case !errors.Is(err, ErrNoActiveCharacter):
		return nil, err
	}

	return &ListCharactersOutput{
		Characters:          output.Characters,
		ActiveCharacterName: activeName,
	}, nil
}

// SelectCharacter makes a character the one checks are rolled for
func (s *service) SelectCharacter(ctx context.Context, input *SelectCharacterInput) (*SelectCharacterOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	character, err := s.characterRepo.GetCharacterByName(ctx, &characterRepo.GetCharacterByNameInput{
		OwnerID: input.OwnerID,
		Name:    name,
	})
	if err != nil {
		if errors.Is(err, characterRepo.ErrCharacterNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}

	if err := s.characterRepo.SetActiveCharacter(ctx, &characterRepo.SetActiveCharacterInput{
		OwnerID:     input.OwnerID,
		CharacterID: character.ID,
	}); err != nil {
		return nil, err
	}

	return &SelectCharacterOutput{
		Character: character,
	}, nil
}

// GetActiveCharacter returns the selected character
func (s *service) GetActiveCharacter(ctx context.Context, input *GetActiveCharacterInput) (*GetActiveCharacterOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	character, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &GetActiveCharacterOutput{
		Character: character,
	}, nil
}

// UpdateAttribute sets one attribute of the selected character
func (s *service) UpdateAttribute(ctx context.Context, input *UpdateAttributeInput) (*UpdateAttributeOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	attribute, err := check.ParseAttribute(input.Attribute)
	if err != nil {
		return nil, ErrUnknownAttribute
	}
	if input.Value < 0 {
		return nil, ErrInvalidAttributeValue
	}

	character, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if character.Attributes == nil {
		character.Attributes = check.NewAttributeSet(s.defaultAttributeValue)
	}
	character.Attributes[attribute] = input.Value

	if err := s.save(ctx, character); err != nil {
		return nil, err
	}

	return &UpdateAttributeOutput{
		Character: character,
		Attribute: attribute,
	}, nil
}

// UpdateSkillValue sets the talent value of one of the selected character's talents
func (s *service) UpdateSkillValue(ctx context.Context, input *UpdateSkillValueInput) (*UpdateSkillValueOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}
	if input.Value < 0 {
		return nil, ErrInvalidSkillValue
	}

	character, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	skill := character.FindSkill(input.SkillName)
	if skill == nil {
		return nil, ErrSkillNotFound
	}
	skill.Value = input.Value

	if err := s.save(ctx, character); err != nil {
		return nil, err
	}

	return &UpdateSkillValueOutput{
		Character: character,
		Skill:     skill,
	}, nil
}

// AddSkill adds a custom talent to the selected character
func (s *service) AddSkill(ctx context.Context, input *AddSkillInput) (*AddSkillOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Attributes) == "" {
		return nil, ErrInvalidSkill
	}
	if utf8.RuneCountInString(name) > catalog.MaxSkillNameLength {
		return nil, ErrInvalidSkill
	}

	attributes, err := check.ParseAttributeList(input.Attributes)
	if err != nil {
		if errors.Is(err, check.ErrUnknownAttribute) {
			return nil, ErrUnknownAttribute
		}
		return nil, ErrInvalidSkill
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = catalog.DefaultCategory
	}

	character, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if character.FindSkill(name) != nil {
		return nil, ErrSkillExists
	}

	skill := &models.Skill{
		Name:           name,
		Category:       category,
		Attributes:     attributes,
		Specialization: strings.TrimSpace(input.Specialization),
	}
	character.Skills = append(character.Skills, skill)

	if err := s.save(ctx, character); err != nil {
		return nil, err
	}

	return &AddSkillOutput{
		Character: character,
		Skill:     skill,
	}, nil
}

// RollSkill rolls a talent check for the selected character
func (s *service) RollSkill(ctx context.Context, input *RollSkillInput) (*RollSkillOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	character, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	skill := character.FindSkill(input.SkillName)
	if skill == nil {
		return nil, ErrSkillNotFound
	}

	definition := skill.Definition()
	rolls, err := s.diceRoller.Draw(check.DiceCount(definition))
	if err != nil {
		return nil, fmt.Errorf("failed to roll dice: %w", err)
	}

	outcome, err := check.ResolveSkillCheck(definition, character.Attributes, input.UseSpecialization, rolls)
	if err != nil {
		return nil, err
	}

	usedSpecialization := input.UseSpecialization && definition.HasSpecialization()
	message, err := s.messaging.GetSkillCheckMessage(ctx, &messaging.GetSkillCheckMessageInput{
		Skill:              definition,
		Outcome:            outcome,
		UsedSpecialization: usedSpecialization,
	})
	if err != nil {
		return nil, err
	}

	s.logRoll(ctx, &models.RollLogEntry{
		OwnerID:       input.OwnerID,
		CharacterName: character.Name,
		Kind:          models.RollKindSkill,
		Title:         message.LogTitle,
		Rolls:         outcome.Rolls,
		Result:        message.LogResult,
		Details:       message.Details,
		Succeeded:     outcome.Succeeded,
		Critical:      outcome.Label().IsCritical(),
	})

	return &RollSkillOutput{
		Character:          character,
		Skill:              skill,
		Outcome:            outcome,
		Message:            message,
		UsedSpecialization: usedSpecialization,
	}, nil
}

// RollAttribute rolls an attribute check for the selected character
func (s *service) RollAttribute(ctx context.Context, input *RollAttributeInput) (*RollAttributeOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	attribute, err := check.ParseAttribute(input.Attribute)
	if err != nil {
		return nil, ErrUnknownAttribute
	}

	character, err := s.activeCharacter(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	rolls, err := s.diceRoller.Draw(1)
	if err != nil {
		return nil, fmt.Errorf("failed to roll dice: %w", err)
	}
	if len(rolls) != 1 {
		return nil, fmt.Errorf("failed to roll dice: expected 1 die, got %d", len(rolls))
	}

	outcome := check.ResolveAttributeCheck(character.Attributes.Get(attribute), rolls[0])

	message, err := s.messaging.GetAttributeCheckMessage(ctx, &messaging.GetAttributeCheckMessageInput{
		Attribute: attribute,
		Outcome:   outcome,
	})
	if err != nil {
		return nil, err
	}

	s.logRoll(ctx, &models.RollLogEntry{
		OwnerID:       input.OwnerID,
		CharacterName: character.Name,
		Kind:          models.RollKindAttribute,
		Title:         message.LogTitle,
		Rolls:         rolls,
		Result:        message.LogResult,
		Details:       message.Details,
		Succeeded:     outcome.Succeeded,
		Critical:      outcome.Label().IsCritical(),
	})

	return &RollAttributeOutput{
		Character: character,
		Attribute: attribute,
		Outcome:   outcome,
		Message:   message,
	}, nil
}

// GetRollLog returns the newest roll log entries
func (s *service) GetRollLog(ctx context.Context, input *GetRollLogInput) (*GetRollLogOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.rollLogRepo.GetEntries(ctx, &rollLogRepo.GetEntriesInput{
		OwnerID: input.OwnerID,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &GetRollLogOutput{
		Entries: output.Entries,
	}, nil
}

// ClearRollLog empties the roll log
func (s *service) ClearRollLog(ctx context.Context, input *ClearRollLogInput) error {
	if input == nil || input.OwnerID == "" {
		return errors.New("input and owner ID cannot be empty")
	}

	return s.rollLogRepo.ClearEntries(ctx, &rollLogRepo.ClearEntriesInput{
		OwnerID: input.OwnerID,
	})
}

// ExportCharacters serializes an owner's roster as indented JSON
func (s *service) ExportCharacters(ctx context.Context, input *ExportCharactersInput) (*ExportCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	output, err := s.characterRepo.ListCharacters(ctx, &characterRepo.ListCharactersInput{
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, err
	}

	roster := make(models.Roster, len(output.Characters))
	for _, character := range output.Characters {
		roster[character.Name] = &models.RosterEntry{
			Attributes: character.Attributes,
			Skills:     character.Skills,
		}
	}

	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}

	return &ExportCharactersOutput{
		FileName: ExportFileName,
		Data:     data,
	}, nil
}

// ImportCharacters replaces an owner's roster with an exported one.
// The first character by name is selected afterwards.
func (s *service) ImportCharacters(ctx context.Context, input *ImportCharactersInput) (*ImportCharactersOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.New("input and owner ID cannot be empty")
	}

	var roster models.Roster
	if err := json.Unmarshal(input.Data, &roster); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}

	now := s.clock.Now()
	seen := make(map[string]bool, len(roster))
	characters := make([]*models.Character, 0, len(roster))
	for name, entry := range roster {
		character, err := s.importCharacter(input.OwnerID, name, entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
		}

		key := strings.ToLower(character.Name)
		if seen[key] {
			return nil, fmt.Errorf("%w: duplicate character %q", ErrInvalidImport, character.Name)
		}
		seen[key] = true

		character.CreatedAt = now
		character.UpdatedAt = now
		characters = append(characters, character)
	}

	sort.Slice(characters, func(i, j int) bool {
		return strings.ToLower(characters[i].Name) < strings.ToLower(characters[j].Name)
	})

	var activeID, activeName string
	if len(characters) > 0 {
		activeID = characters[0].ID
		activeName = characters[0].Name
	}

	if err := s.characterRepo.ReplaceCharacters(ctx, &characterRepo.ReplaceCharactersInput{
		OwnerID:           input.OwnerID,
		Characters:        characters,
		ActiveCharacterID: activeID,
	}); err != nil {
		return nil, err
	}

	return &ImportCharactersOutput{
		Characters:          characters,
		ActiveCharacterName: activeName,
	}, nil
}

func (s *service) importCharacter(ownerID, name string, entry *models.RosterEntry) (*models.Character, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if entry == nil {
		return nil, fmt.Errorf("character %q has no sheet", name)
	}

	attributes := check.NewAttributeSet(s.defaultAttributeValue)
	for attribute, value := range entry.Attributes {
		if !attribute.IsValid() {
			return nil, fmt.Errorf("character %q: %w: %s", name, check.ErrUnknownAttribute, attribute)
		}
		if value < 0 {
			return nil, fmt.Errorf("character %q: %w: %s %d", name, ErrInvalidAttributeValue, attribute, value)
		}
		attributes[attribute] = value
	}

	skills := make([]*models.Skill, 0, len(entry.Skills))
	seen := make(map[string]bool, len(entry.Skills))
	for _, skill := range entry.Skills {
		if skill == nil {
			continue
		}
		if skill.Category == "" {
			skill.Category = catalog.DefaultCategory
		}
		if err := catalog.ValidateSkill(skill); err != nil {
			return nil, fmt.Errorf("character %q, talent %q: %w", name, skill.Name, err)
		}

		key := strings.ToLower(skill.Name)
		if seen[key] {
			return nil, fmt.Errorf("character %q: duplicate talent %q", name, skill.Name)
		}
		seen[key] = true
		skills = append(skills, skill)
	}

	return &models.Character{
		ID:         s.uuidGenerator.NewUUID(),
		OwnerID:    ownerID,
		Name:       name,
		Attributes: attributes,
		Skills:     skills,
	}, nil
}

func (s *service) activeCharacter(ctx context.Context, ownerID string) (*models.Character, error) {
	character, err := s.characterRepo.GetActiveCharacter(ctx, &characterRepo.GetActiveCharacterInput{
		OwnerID: ownerID,
	})
	if err != nil {
		if errors.Is(err, characterRepo.ErrNoActiveCharacter) {
			return nil, ErrNoActiveCharacter
		}
		return nil, err
	}
	return character, nil
}

func (s *service) save(ctx context.Context, character *models.Character) error {
	character.UpdatedAt = s.clock.Now()
	return s.characterRepo.SaveCharacter(ctx, &characterRepo.SaveCharacterInput{
		Character: character,
	})
}

// logRoll appends to the roll log. A failed write does not undo the roll.
func (s *service) logRoll(ctx context.Context, entry *models.RollLogEntry) {
	entry.ID = s.uuidGenerator.NewUUID()
	entry.Timestamp = s.clock.Now()

	if err := s.rollLogRepo.AddEntry(ctx, &rollLogRepo.AddEntryInput{
		Entry: entry,
	}); err != nil {
		log.Printf("Error adding roll log entry for %s: %v", entry.OwnerID, err)
	}
}
