package message

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateMessageReq is the contact-form submission body.
type CreateMessageReq struct {
	Name             string `json:"name"`
	Email            string `json:"email"`
	Content          string `json:"content"`
	PreferredChannel string `json:"preferredChannel,omitempty"`
}

func (r CreateMessageReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 200),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			// EmailFormat is the syntax-only check; is.Email resolves
			// the domain over DNS inside request validation
			is.EmailFormat.Error("invalid email format"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.Length(1, 10000),
		),
		validation.Field(&r.PreferredChannel,
			validation.In(ChannelEmail, ChannelPhone, ChannelLinkedIn).
				Error("preferredChannel must be email, phone or linkedin"),
		),
	)
}

// UpdateMessageReq is a partial patch: only non-nil fields are applied,
// patch fields win over the stored record.
type UpdateMessageReq struct {
	Name             *string `json:"name,omitempty"`
	Email            *string `json:"email,omitempty"`
	Content          *string `json:"content,omitempty"`
	PreferredChannel *string `json:"preferredChannel,omitempty"`
	Status           *string `json:"status,omitempty"`
}

func (r UpdateMessageReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.When(r.Email != nil, is.EmailFormat.Error("invalid email format")),
		),
		validation.Field(&r.Status,
			validation.When(r.Status != nil,
				validation.In(StatusUnread, StatusReplied).Error("status must be unread or replied"),
			),
		),
		validation.Field(&r.PreferredChannel,
			validation.When(r.PreferredChannel != nil,
				validation.In(ChannelEmail, ChannelPhone, ChannelLinkedIn).
					Error("preferredChannel must be email, phone or linkedin"),
			),
		),
	)
}

// Apply shallow-merges the patch onto m.
func (r UpdateMessageReq) Apply(m *ContactMessage) {
	if r.Name != nil {
		m.Name = *r.Name
	}
	if r.Email != nil {
		m.Email = *r.Email
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.PreferredChannel != nil {
		m.PreferredChannel = *r.PreferredChannel
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
}
