package dto

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	DueDate     string `json:"due_date"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *int    `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

type DeleteTaskResponse struct {
	Message   string `json:"message"`
	TaskTitle string `json:"task_title"`
}
