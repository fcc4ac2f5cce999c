package payload

import (
	"strings"
	"tasker/internal/core"

	"github.com/jellydator/validation"
)

type TaskRequest struct {
	Description string `json:"description"`
	Date        string `json:"date"`
}

func (t TaskRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Description, validation.Required, validation.By(notBlank)),
		validation.Field(&t.Date, validation.Required, validation.Date(core.DateInputLayout)),
	)
}

func (t TaskRequest) ToMessage() core.TaskMessage {
	return core.TaskMessage{
		Description: t.Description,
		Date:        strings.TrimSpace(t.Date),
	}
}

type TaskIDRequest struct {
	TaskID string `json:"task_id"`
}

func (t TaskIDRequest) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.TaskID, validation.Required, validation.By(notBlank)),
	)
}

func (t TaskIDRequest) ID() string {
	return strings.TrimSpace(t.TaskID)
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return validation.NewError("validation_blank", "cannot be blank")
	}
	return nil
}
