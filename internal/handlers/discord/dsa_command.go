package discord

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/talentprobe/internal/check"
	"github.com/KirkDiggler/talentprobe/internal/services/character"
	"github.com/KirkDiggler/talentprobe/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	// maxImportSize caps the size of an imported roster file
	maxImportSize = 1 << 20

	defaultLogLimit = 10
	maxLogLimit     = 25
	maxChoices      = 25
)

// DSACommand handles the /dsa command
type DSACommand struct {
	BaseCommand
	characterService character.Service
	messagingService messaging.Service
	httpClient       *http.Client
}

func attributeChoices() []*discordgo.ApplicationCommandOptionChoice {
	names := map[check.Attribute]string{
		check.AttributeCourage:      "Mut",
		check.AttributeWisdom:       "Klugheit",
		check.AttributeIntuition:    "Intuition",
		check.AttributeCharisma:     "Charisma",
		check.AttributeDexterity:    "Fingerfertigkeit",
		check.AttributeAgility:      "Gewandtheit",
		check.AttributeConstitution: "Konstitution",
		check.AttributeStrength:     "Körperkraft",
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(check.Attributes))
	for _, attribute := range check.Attributes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("%s (%s)", names[attribute], attribute),
			Value: string(attribute),
		})
	}
	return choices
}

func nameOption(description string, autocomplete bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "name",
		Description:  description,
		Required:     true,
		Autocomplete: autocomplete,
	}
}

// NewDSACommand creates a new dsa command handler. A nil HTTP client gets a default with a timeout.
func NewDSACommand(characterService character.Service, messagingService messaging.Service, httpClient *http.Client) *DSACommand {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	minZero := float64(0)
	minOne := float64(1)

	attributeOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "attribute",
		Description: "Eigenschaft",
		Required:    true,
		Choices:     attributeChoices(),
	}

	return &DSACommand{
		BaseCommand: BaseCommand{
			Name:        "dsa",
			Description: "Das Schwarze Auge: Helden verwalten und Proben würfeln",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "character",
					Description: "Helden verwalten",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "new",
							Description: "Neuen Helden anlegen",
							Options:     []*discordgo.ApplicationCommandOption{nameOption("Name des Helden", false)},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "delete",
							Description: "Helden löschen",
							Options:     []*discordgo.ApplicationCommandOption{nameOption("Name des Helden", true)},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "select",
							Description: "Aktiven Helden wählen",
							Options:     []*discordgo.ApplicationCommandOption{nameOption("Name des Helden", true)},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "Alle Helden anzeigen",
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "show",
							Description: "Eigenschaften des aktiven Helden anzeigen",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "attribute",
					Description: "Eigenschaften",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "set",
							Description: "Eigenschaftswert setzen",
							Options: []*discordgo.ApplicationCommandOption{
								attributeOption,
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "value",
									Description: "Neuer Wert",
									Required:    true,
									MinValue:    &minZero,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "roll",
							Description: "Eigenschaftsprobe würfeln",
							Options:     []*discordgo.ApplicationCommandOption{attributeOption},
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "skill",
					Description: "Talente",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "roll",
							Description: "Talentprobe würfeln",
							Options: []*discordgo.ApplicationCommandOption{
								nameOption("Talent", true),
								{
									Type:        discordgo.ApplicationCommandOptionBoolean,
									Name:        "specialization",
									Description: "Spezialisierung nutzen (+2)",
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "add",
							Description: "Eigenes Talent hinzufügen",
							Options: []*discordgo.ApplicationCommandOption{
								nameOption("Name des Talents", false),
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "attributes",
									Description: "Eigenschaften, z.B. MU,KL,IN",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "category",
									Description: "Kategorie (Standard: Allgemein)",
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "specialization",
									Description: "Spezialisierung",
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "value",
							Description: "Talentwert setzen",
							Options: []*discordgo.ApplicationCommandOption{
								nameOption("Talent", true),
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "value",
									Description: "Neuer Talentwert",
									Required:    true,
									MinValue:    &minZero,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "list",
							Description: "Talente des aktiven Helden anzeigen",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Name:        "log",
					Description: "Würfelprotokoll",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "show",
							Description: "Letzte Würfe anzeigen",
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "limit",
									Description: "Anzahl der Einträge",
									MinValue:    &minOne,
									MaxValue:    maxLogLimit,
								},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Name:        "clear",
							Description: "Protokoll leeren",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "export",
					Description: "Alle Helden als JSON exportieren",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "import",
					Description: "Helden aus einem Export importieren (ersetzt alle Helden)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionAttachment,
							Name:        "file",
							Description: "dsa_characters.json",
							Required:    true,
						},
					},
				},
			},
		},
		characterService: characterService,
		messagingService: messagingService,
		httpClient:       httpClient,
	}
}

// Handle processes a Discord interaction for the dsa command
func (c *DSACommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	return Respond(s, i, c.execute(context.Background(), interactionUserID(i), data))
}

// HandleAutocomplete suggests character and talent names
func (c *DSACommand) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	return RespondWithChoices(s, i, c.autocomplete(context.Background(), interactionUserID(i), data))
}

type commandOptions map[string]*discordgo.ApplicationCommandInteractionDataOption

func (o commandOptions) stringValue(name string) string {
	if opt, ok := o[name]; ok {
		return strings.TrimSpace(opt.StringValue())
	}
	return ""
}

func (o commandOptions) intValue(name string, fallback int) int {
	if opt, ok := o[name]; ok {
		return int(opt.IntValue())
	}
	return fallback
}

func (o commandOptions) boolValue(name string) bool {
	if opt, ok := o[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// resolveSubcommand unwraps "group sub" or plain "sub" invocations
func resolveSubcommand(options []*discordgo.ApplicationCommandInteractionDataOption) (group, sub string, opts commandOptions) {
	opts = make(commandOptions)
	if len(options) == 0 {
		return "", "", opts
	}

	first := options[0]
	leaf := first
	if first.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
		group = first.Name
		if len(first.Options) == 0 {
			return group, "", opts
		}
		leaf = first.Options[0]
	}

	for _, opt := range leaf.Options {
		opts[opt.Name] = opt
	}
	return group, leaf.Name, opts
}

// execute runs a /dsa invocation and always produces a response
func (c *DSACommand) execute(ctx context.Context, userID string, data discordgo.ApplicationCommandInteractionData) *discordgo.InteractionResponseData {
	group, sub, opts := resolveSubcommand(data.Options)

	var (
		response *discordgo.InteractionResponseData
		err      error
	)
	switch group + " " + sub {
	case "character new":
		response, err = c.handleCharacterNew(ctx, userID, opts)
	case "character delete":
		response, err = c.handleCharacterDelete(ctx, userID, opts)
	case "character select":
		response, err = c.handleCharacterSelect(ctx, userID, opts)
	case "character list":
		response, err = c.handleCharacterList(ctx, userID)
	case "character show":
		response, err = c.handleCharacterShow(ctx, userID)
	case "attribute set":
		response, err = c.handleAttributeSet(ctx, userID, opts)
	case "attribute roll":
		response, err = c.handleAttributeRoll(ctx, userID, opts.stringValue("attribute"))
	case "skill roll":
		response, err = c.handleSkillRoll(ctx, userID, opts.stringValue("name"), opts.boolValue("specialization"))
	case "skill add":
		response, err = c.handleSkillAdd(ctx, userID, opts)
	case "skill value":
		response, err = c.handleSkillValue(ctx, userID, opts)
	case "skill list":
		response, err = c.handleSkillList(ctx, userID)
	case "log show":
		response, err = c.handleLogShow(ctx, userID, opts)
	case "log clear":
		response, err = c.handleLogClear(ctx, userID)
	case " export":
		response, err = c.handleExport(ctx, userID)
	case " import":
		response, err = c.handleImport(ctx, userID, opts, data.Resolved)
	default:
		err = fmt.Errorf("unknown subcommand %q", strings.TrimSpace(group+" "+sub))
	}

	if err != nil {
		subject := opts.stringValue("name")
		if subject == "" {
			subject = opts.stringValue("attribute")
		}
		return c.errorResponse(ctx, err, subject)
	}

	return response
}

func (c *DSACommand) handleCharacterNew(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
		OwnerID: userID,
		Name:    opts.stringValue("name"),
	})
	if err != nil {
		return nil, err
	}

	sheet, err := c.messagingService.GetCharacterSheetMessage(ctx, &messaging.GetCharacterSheetMessageInput{
		Character: output.Character,
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("Held angelegt mit %d Talenten. **%s** ist jetzt dein aktiver Held.",
		len(output.Character.Skills), output.Character.Name)
	return renderSheet(sheet, description), nil
}

func (c *DSACommand) handleCharacterDelete(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	name := opts.stringValue("name")
	output, err := c.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
		OwnerID: userID,
		Name:    name,
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("**%s** wurde gelöscht.", name)
	if output.ActiveCharacterName != "" {
		description += fmt.Sprintf("\nAktiver Held: **%s**", output.ActiveCharacterName)
	} else {
		description += "\nDu hast keine Helden mehr."
	}
	return renderInfo("Held gelöscht", description, true), nil
}

func (c *DSACommand) handleCharacterSelect(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.SelectCharacter(ctx, &character.SelectCharacterInput{
		OwnerID: userID,
		Name:    opts.stringValue("name"),
	})
	if err != nil {
		return nil, err
	}

	return renderInfo("Held gewählt", fmt.Sprintf("Aktiver Held: **%s**", output.Character.Name), true), nil
}

func (c *DSACommand) handleCharacterList(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.ListCharacters(ctx, &character.ListCharactersInput{
		OwnerID: userID,
	})
	if err != nil {
		return nil, err
	}

	return renderCharacterList(output), nil
}

func (c *DSACommand) handleCharacterShow(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	return c.sheet(ctx, userID, false)
}

func (c *DSACommand) handleSkillList(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	return c.sheet(ctx, userID, true)
}

func (c *DSACommand) sheet(ctx context.Context, userID string, includeSkills bool) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.GetActiveCharacter(ctx, &character.GetActiveCharacterInput{
		OwnerID: userID,
	})
	if err != nil {
		return nil, err
	}

	sheet, err := c.messagingService.GetCharacterSheetMessage(ctx, &messaging.GetCharacterSheetMessageInput{
		Character:     output.Character,
		IncludeSkills: includeSkills,
	})
	if err != nil {
		return nil, err
	}

	return renderSheet(sheet, fmt.Sprintf("%d Talente", len(output.Character.Skills))), nil
}

func (c *DSACommand) handleAttributeSet(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.UpdateAttribute(ctx, &character.UpdateAttributeInput{
		OwnerID:   userID,
		Attribute: opts.stringValue("attribute"),
		Value:     opts.intValue("value", 0),
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s von **%s** ist jetzt %d.",
		output.Attribute, output.Character.Name, output.Character.Attributes.Get(output.Attribute))
	return renderInfo("Eigenschaft geändert", description, true), nil
}

func (c *DSACommand) handleAttributeRoll(ctx context.Context, userID, attribute string) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.RollAttribute(ctx, &character.RollAttributeInput{
		OwnerID:   userID,
		Attribute: attribute,
	})
	if err != nil {
		return nil, err
	}

	return renderAttributeRoll(output), nil
}

func (c *DSACommand) handleSkillRoll(ctx context.Context, userID, skillName string, useSpecialization bool) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.RollSkill(ctx, &character.RollSkillInput{
		OwnerID:           userID,
		SkillName:         skillName,
		UseSpecialization: useSpecialization,
	})
	if err != nil {
		return nil, err
	}

	return renderSkillRoll(output), nil
}

func (c *DSACommand) handleSkillAdd(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.AddSkill(ctx, &character.AddSkillInput{
		OwnerID:        userID,
		Name:           opts.stringValue("name"),
		Category:       opts.stringValue("category"),
		Attributes:     opts.stringValue("attributes"),
		Specialization: opts.stringValue("specialization"),
	})
	if err != nil {
		return nil, err
	}

	skill := output.Skill
	attributes := make([]string, 0, len(skill.Attributes))
	for _, attribute := range skill.Attributes {
		attributes = append(attributes, string(attribute))
	}

	description := fmt.Sprintf("**%s** (%s) in %s hinzugefügt.", skill.Name, strings.Join(attributes, "/"), skill.Category)
	return renderInfo("Talent hinzugefügt", description, true), nil
}

func (c *DSACommand) handleSkillValue(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.UpdateSkillValue(ctx, &character.UpdateSkillValueInput{
		OwnerID:   userID,
		SkillName: opts.stringValue("name"),
		Value:     opts.intValue("value", 0),
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("**%s** hat jetzt TaW %d.", output.Skill.Name, output.Skill.Value)
	return renderInfo("Talentwert geändert", description, true), nil
}

func (c *DSACommand) handleLogShow(ctx context.Context, userID string, opts commandOptions) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.GetRollLog(ctx, &character.GetRollLogInput{
		OwnerID: userID,
		Limit:   opts.intValue("limit", defaultLogLimit),
	})
	if err != nil {
		return nil, err
	}

	message, err := c.messagingService.GetRollLogMessage(ctx, &messaging.GetRollLogMessageInput{
		Entries: output.Entries,
	})
	if err != nil {
		return nil, err
	}

	return renderInfo("Würfelprotokoll", message.Message, true), nil
}

func (c *DSACommand) handleLogClear(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	if err := c.characterService.ClearRollLog(ctx, &character.ClearRollLogInput{
		OwnerID: userID,
	}); err != nil {
		return nil, err
	}

	return renderInfo("Würfelprotokoll", "Protokoll geleert.", true), nil
}

func (c *DSACommand) handleExport(ctx context.Context, userID string) (*discordgo.InteractionResponseData, error) {
	output, err := c.characterService.ExportCharacters(ctx, &character.ExportCharactersInput{
		OwnerID: userID,
	})
	if err != nil {
		return nil, err
	}

	return renderExport(output), nil
}

func (c *DSACommand) handleImport(ctx context.Context, userID string, opts commandOptions, resolved *discordgo.ApplicationCommandInteractionDataResolved) (*discordgo.InteractionResponseData, error) {
	var attachmentID string
	if opt, ok := opts["file"]; ok {
		attachmentID, _ = opt.Value.(string)
	}
	if resolved == nil || resolved.Attachments[attachmentID] == nil {
		return nil, fmt.Errorf("%w: attachment missing", character.ErrInvalidImport)
	}

	data, err := c.download(ctx, resolved.Attachments[attachmentID].URL)
	if err != nil {
		return nil, err
	}

	output, err := c.characterService.ImportCharacters(ctx, &character.ImportCharactersInput{
		OwnerID: userID,
		Data:    data,
	})
	if err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%d Helden importiert.", len(output.Characters))
	if output.ActiveCharacterName != "" {
		description += fmt.Sprintf("\nAktiver Held: **%s**", output.ActiveCharacterName)
	}
	return renderInfo("Import abgeschlossen", description, true), nil
}

// download fetches an attachment, refusing files above maxImportSize
func (c *DSACommand) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build attachment request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download attachment: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download attachment: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImportSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if len(data) > maxImportSize {
		return nil, fmt.Errorf("%w: file larger than %d bytes", character.ErrInvalidImport, maxImportSize)
	}

	return data, nil
}

// autocomplete suggests names for the focused option
func (c *DSACommand) autocomplete(ctx context.Context, userID string, data discordgo.ApplicationCommandInteractionData) []*discordgo.ApplicationCommandOptionChoice {
	group, sub, opts := resolveSubcommand(data.Options)

	var focused *discordgo.ApplicationCommandInteractionDataOption
	for _, opt := range opts {
		if opt.Focused {
			focused = opt
		}
	}
	if focused == nil || focused.Name != "name" {
		return []*discordgo.ApplicationCommandOptionChoice{}
	}

	var candidates []string
	switch {
	case group == "skill" && sub != "add":
		output, err := c.characterService.GetActiveCharacter(ctx, &character.GetActiveCharacterInput{OwnerID: userID})
		if err != nil {
			return []*discordgo.ApplicationCommandOptionChoice{}
		}
		for _, skill := range output.Character.Skills {
			candidates = append(candidates, skill.Name)
		}
	case group == "character" && sub != "new":
		output, err := c.characterService.ListCharacters(ctx, &character.ListCharactersInput{OwnerID: userID})
		if err != nil {
			return []*discordgo.ApplicationCommandOptionChoice{}
		}
		for _, ch := range output.Characters {
			candidates = append(candidates, ch.Name)
		}
	}

	query := strings.ToLower(strings.TrimSpace(fmt.Sprint(focused.Value)))
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, candidate := range candidates {
		if len(choices) == maxChoices {
			break
		}
		if query != "" && !strings.Contains(strings.ToLower(candidate), query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  candidate,
			Value: candidate,
		})
	}
	return choices
}

// errorResponse turns a service error into an ephemeral message
func (c *DSACommand) errorResponse(ctx context.Context, err error, subject string) *discordgo.InteractionResponseData {
	kind := errorKind(err)
	if kind == messaging.ErrorKindUnknown {
		log.Printf("Error handling dsa command: %v", err)
	}

	output, msgErr := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Kind:    kind,
		Subject: subject,
	})
	if msgErr != nil {
		log.Printf("Error getting error message: %v", msgErr)
		return renderError("Da ist etwas schiefgelaufen.")
	}

	return renderError(output.Message)
}

// errorKind maps service errors onto user-facing error kinds
func errorKind(err error) messaging.ErrorKind {
	kinds := []struct {
		target error
		kind   messaging.ErrorKind
	}{
		{character.ErrNoActiveCharacter, messaging.ErrorKindNoActiveCharacter},
		{character.ErrCharacterExists, messaging.ErrorKindCharacterExists},
		{character.ErrCharacterNotFound, messaging.ErrorKindCharacterNotFound},
		{character.ErrInvalidName, messaging.ErrorKindInvalidName},
		{character.ErrUnknownAttribute, messaging.ErrorKindUnknownAttribute},
		{character.ErrInvalidAttributeValue, messaging.ErrorKindInvalidValue},
		{character.ErrInvalidSkillValue, messaging.ErrorKindInvalidValue},
		{character.ErrSkillNotFound, messaging.ErrorKindSkillNotFound},
		{character.ErrSkillExists, messaging.ErrorKindSkillExists},
		{character.ErrInvalidSkill, messaging.ErrorKindInvalidSkill},
		{character.ErrInvalidImport, messaging.ErrorKindInvalidImport},
	}

	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return k.kind
		}
	}
	return messaging.ErrorKindUnknown
}

// reroll repeats the check encoded in a re-roll button. It reports false for unknown buttons.
func (c *DSACommand) reroll(ctx context.Context, userID, customID string) (*discordgo.InteractionResponseData, bool) {
	if skillName, useSpecialization, ok := parseRerollSkillCustomID(customID); ok {
		response, err := c.handleSkillRoll(ctx, userID, skillName, useSpecialization)
		if err != nil {
			return c.errorResponse(ctx, err, skillName), true
		}
		return response, true
	}

	if attribute, ok := parseRerollAttributeCustomID(customID); ok {
		response, err := c.handleAttributeRoll(ctx, userID, attribute)
		if err != nil {
			return c.errorResponse(ctx, err, attribute), true
		}
		return response, true
	}

	return nil, false
}
