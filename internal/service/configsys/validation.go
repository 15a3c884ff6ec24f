package configsys

import (
	"errors"
	"fmt"
	"strings"

	"confighub/internal/config"
	"confighub/internal/domain"
	models "confighub/internal/domain/models/configsys"
	svc "confighub/internal/domain/services/configsys"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// invalid converts a rule failure into a *domain.ValidationError
func invalid(err error) error {
	if err == nil {
		return nil
	}
	return domain.NewValidation(err.Error())
}

// notBlank rejects strings that are empty after trimming. Nil pointers pass;
// absence is Required's job.
func notBlank(value interface{}) error {
	var str string
	switch v := value.(type) {
	case string:
		str = v
	case *string:
		if v == nil {
			return nil
		}
		str = *v
	default:
		return errors.New("must be a string")
	}
	if strings.TrimSpace(str) == "" {
		return errors.New("cannot be blank")
	}
	return nil
}

func folderIconValues() []interface{} {
	out := make([]interface{}, len(models.FolderIcons))
	for i, icon := range models.FolderIcons {
		out[i] = icon
	}
	return out
}

func activityTypeValues() []interface{} {
	out := make([]interface{}, len(models.ActivityTypes))
	for i, t := range models.ActivityTypes {
		out[i] = t
	}
	return out
}

func nameRules(max int) []validation.Rule {
	return []validation.Rule{
		validation.Length(1, max),
		validation.By(notBlank),
	}
}

func validateCreateFolder(req *svc.CreateFolderRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Name, append([]validation.Rule{validation.Required}, nameRules(config.MaxFolderNameLength)...)...),
		validation.Field(&req.Icon, validation.Required, validation.In(folderIconValues()...).Error("must be a known folder icon")),
	))
}

func validateUpdateFolder(req *svc.UpdateFolderRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Name, nameRules(config.MaxFolderNameLength)...),
		validation.Field(&req.Icon, validation.NilOrNotEmpty, validation.In(folderIconValues()...).Error("must be a known folder icon")),
	))
}

func validateCreateConfig(req *svc.CreateConfigRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.FolderID, validation.Required),
		validation.Field(&req.Name, append([]validation.Rule{validation.Required}, nameRules(config.MaxConfigNameLength)...)...),
		validation.Field(&req.Content, validation.Length(0, config.MaxContentLength)),
	))
}

func validateUpdateConfig(req *svc.UpdateConfigRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.FolderID, validation.NilOrNotEmpty),
		validation.Field(&req.Name, nameRules(config.MaxConfigNameLength)...),
		validation.Field(&req.Content, validation.Length(0, config.MaxContentLength)),
	))
}

// validateTags runs on normalized tags
func validateTags(tags []string) error {
	return validation.Validate(tags, validation.Each(validation.Length(1, config.MaxTagLength)))
}

func validateCreatePrompt(req *svc.CreatePromptRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Title, append([]validation.Rule{validation.Required}, nameRules(config.MaxTitleLength)...)...),
		validation.Field(&req.Content, validation.Length(0, config.MaxContentLength)),
		validation.Field(&req.Tags, validation.By(func(interface{}) error { return validateTags(normalizeTags(req.Tags)) })),
	))
}

func validateUpdatePrompt(req *svc.UpdatePromptRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Title, nameRules(config.MaxTitleLength)...),
		validation.Field(&req.Content, validation.Length(0, config.MaxContentLength)),
		validation.Field(&req.Tags, validation.By(func(interface{}) error { return validateTags(normalizeTags(req.Tags)) })),
	))
}

func validateCreateSnippet(req *svc.CreateSnippetRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Title, append([]validation.Rule{validation.Required}, nameRules(config.MaxTitleLength)...)...),
		validation.Field(&req.Content, validation.Length(0, config.MaxContentLength)),
	))
}

func validateUpdateSnippet(req *svc.UpdateSnippetRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Title, nameRules(config.MaxTitleLength)...),
		validation.Field(&req.Content, validation.Length(0, config.MaxContentLength)),
	))
}

func validateCreateWorkspace(req *svc.CreateWorkspaceRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Name, append([]validation.Rule{validation.Required}, nameRules(config.MaxWorkspaceNameLength)...)...),
		validation.Field(&req.Email, is.EmailFormat),
	))
}

func validateUpdateWorkspace(req *svc.UpdateWorkspaceRequest) error {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, nameRules(config.MaxWorkspaceNameLength)...),
	); err != nil {
		return invalid(err)
	}
	if req.Email.Present {
		if err := validation.Validate(req.Email.Value, is.EmailFormat); err != nil {
			return invalid(fmt.Errorf("email: %w", err))
		}
	}
	return nil
}

func validateUpdateUser(req *svc.UpdateUserRequest) error {
	return invalid(validation.ValidateStruct(req,
		validation.Field(&req.Name, nameRules(config.MaxWorkspaceNameLength)...),
		validation.Field(&req.Email, is.EmailFormat),
	))
}

func validateActivity(activityType models.ActivityType, description string) error {
	return invalid(validation.Errors{
		"type":        validation.Validate(activityType, validation.Required, validation.In(activityTypeValues()...).Error("must be a known activity type")),
		"description": validation.Validate(description, validation.Required, validation.Length(1, config.MaxActivityDescriptionLength)),
	}.Filter())
}
