package http

import (
	"todo-api/internal/domain"
	"todo-api/pkg/validator"
)

type (
	// CreateTodoRequest struct - HTTP request DTO for POST /todo
	CreateTodoRequest struct {
		Title       *string `json:"title" validate:"required,notblank,max=255" example:"Buy groceries"`
		Description *string `json:"description" validate:"required,max=1024" example:"Milk, bread and eggs"`
		Completed   *bool   `json:"completed" validate:"required" example:"false"`
	}

	// UpdateTodoRequest struct - HTTP request DTO for PUT /todo
	UpdateTodoRequest struct {
		ID          *string `json:"id" validate:"required" example:"507f1f77bcf86cd799439011"`
		Title       *string `json:"title" validate:"required,notblank,max=255" example:"Buy groceries"`
		Description *string `json:"description" validate:"required,max=1024" example:"Milk, bread and eggs"`
		Completed   *bool   `json:"completed" validate:"required" example:"true"`
	}
)

// toDomain converts a validated request to the domain DTO
func (r CreateTodoRequest) toDomain() domain.TodoRequest {
	return domain.TodoRequest{
		Title:       deref(r.Title),
		Description: deref(r.Description),
		Completed:   r.Completed != nil && *r.Completed,
	}
}

// toDomain converts a validated request to the domain DTO
func (r UpdateTodoRequest) toDomain() domain.TodoRequest {
	return domain.TodoRequest{
		ID:          deref(r.ID),
		Title:       deref(r.Title),
		Description: deref(r.Description),
		Completed:   r.Completed != nil && *r.Completed,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// fieldErrors converts validator output to the descriptors sent to clients
func fieldErrors(fields []validator.FieldError) []domain.FieldError {
	details := make([]domain.FieldError, 0, len(fields))
	for _, f := range fields {
		params := map[string]string{"rule": f.Tag}
		if f.Tag == "required" {
			params["missingProperty"] = f.Field
		}
		if f.Param != "" {
			params["limit"] = f.Param
		}
		details = append(details, domain.FieldError{
			InstancePath: f.Path,
			Params:       params,
			Message:      f.Message,
		})
	}
	return details
}
