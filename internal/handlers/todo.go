package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tasknest-dev/tasknest/db"
	"github.com/tasknest-dev/tasknest/internal/models"
	"github.com/tasknest-dev/tasknest/internal/recurrence"
	"github.com/tasknest-dev/tasknest/internal/types"
	"github.com/tasknest-dev/tasknest/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreateTodoRequest struct {
	Text       string `json:"text" binding:"required"`
	DueDate    string `json:"dueDate"`
	Tag        string `json:"tag"`
	Priority   string `json:"priority"`
	Recurrence string `json:"recurrence"`
	Reminder   bool   `json:"reminder"`
	Completed  bool   `json:"completed"`
}

type UpdateTodoRequest struct {
	Text       *string `json:"text"`
	DueDate    *string `json:"dueDate"`
	Tag        *string `json:"tag"`
	Priority   *string `json:"priority"`
	Recurrence *string `json:"recurrence"`
	Reminder   *bool   `json:"reminder"`
	Completed  *bool   `json:"completed"`
}

const dueDateLayout = "2006-01-02"

func parseDueDate(s string) (*datatypes.Date, error) {
	t, err := time.Parse(dueDateLayout, s)

	if err != nil {
		// Date pickers that send a full timestamp still get accepted.
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
	}

	d := datatypes.Date(t)
	return &d, nil
}

func todoResponse(todo models.Todo) types.TodoResponse {
	var dueDate *string

	if todo.DueDate != nil {
		s := time.Time(*todo.DueDate).Format(dueDateLayout)
		dueDate = &s
	}

	return types.TodoResponse{
		ID:            todo.ID,
		Text:          todo.Text,
		Completed:     todo.Completed,
		CompletedDate: todo.CompletedDate,
		DueDate:       dueDate,
		Tag:           todo.Tag,
		Priority:      todo.Priority,
		Recurrence:    todo.Recurrence,
		Reminder:      todo.Reminder,
		CreatedAt:     todo.CreatedAt,
		UpdatedAt:     todo.UpdatedAt,
	}
}

func CreateTodo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateTodoRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	if req.Tag == "" {
		req.Tag = types.DefaultTag
	}

	if req.Priority == "" {
		req.Priority = types.DefaultPriority
	}

	if req.Recurrence == "" {
		req.Recurrence = types.DefaultRecurrence
	}

	if !types.ValidPriority(req.Priority) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of Low, Medium, High"})
		return
	}

	if !types.ValidRecurrence(req.Recurrence) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "recurrence must be one of None, Daily, Weekly, Monthly"})
		return
	}

	todo := models.Todo{
		UserID:     userID,
		Text:       req.Text,
		Completed:  req.Completed,
		Tag:        req.Tag,
		Priority:   req.Priority,
		Recurrence: req.Recurrence,
		Reminder:   req.Reminder,
	}

	if req.DueDate != "" {
		dueDate, err := parseDueDate(req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be a YYYY-MM-DD date"})
			return
		}
		todo.DueDate = dueDate
	}

	if todo.Completed {
		now := time.Now()
		todo.CompletedDate = &now
	}

	if err := db.DB.Create(&todo).Error; err != nil {
		log.Printf("Failed to create todo for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	BroadcastTodoEvent(userID, TodoCreated, todo.ID)

	ctx.JSON(http.StatusCreated, gin.H{"todo": todoResponse(todo)})
}

func ListTodos(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var todos []models.Todo

	if err := db.DB.Where("user_id = ?", userID).Find(&todos).Error; err != nil {
		log.Printf("Failed to list todos for user %d: %v", userID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	// Recurring todos whose period has rolled over revert to incomplete at
	// read time, so every client sees the same state without a sweep.
	now := time.Now()

	for i := range todos {
		if !recurrence.ShouldReset(todos[i].Completed, todos[i].CompletedDate, todos[i].Recurrence, now) {
			continue
		}

		if err := resetTodo(&todos[i]); err != nil {
			log.Printf("Failed to reset recurring todo %d: %v", todos[i].ID, err)
			continue
		}

		BroadcastTodoEvent(userID, TodoReset, todos[i].ID)
	}

	response := make([]types.TodoResponse, 0, len(todos))

	for _, todo := range todos {
		response = append(response, todoResponse(todo))
	}

	ctx.JSON(http.StatusOK, gin.H{"todos": response})
}

// resetTodo clears the completion state in storage and on the in-memory
// record. Conditioned on id and owner, like every other todo write.
func resetTodo(todo *models.Todo) error {
	err := db.DB.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todo.ID, todo.UserID).
		Updates(map[string]interface{}{"completed": false, "completed_date": nil}).Error

	if err != nil {
		return err
	}

	todo.Completed = false
	todo.CompletedDate = nil
	return nil
}

func UpdateTodo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req UpdateTodoRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updates := make(map[string]interface{})

	if req.Text != nil {
		if *req.Text == "" {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "text must not be empty"})
			return
		}
		updates["text"] = *req.Text
	}

	if req.Tag != nil {
		updates["tag"] = *req.Tag
	}

	if req.Priority != nil {
		if !types.ValidPriority(*req.Priority) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "priority must be one of Low, Medium, High"})
			return
		}
		updates["priority"] = *req.Priority
	}

	if req.Recurrence != nil {
		if !types.ValidRecurrence(*req.Recurrence) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "recurrence must be one of None, Daily, Weekly, Monthly"})
			return
		}
		updates["recurrence"] = *req.Recurrence
	}

	if req.Reminder != nil {
		updates["reminder"] = *req.Reminder
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			updates["due_date"] = nil
		} else {
			dueDate, err := parseDueDate(*req.DueDate)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"error": "dueDate must be a YYYY-MM-DD date"})
				return
			}
			updates["due_date"] = dueDate
		}
	}

	if req.Completed != nil {
		updates["completed"] = *req.Completed

		if *req.Completed {
			updates["completed_date"] = time.Now()
		} else {
			updates["completed_date"] = nil
		}
	}

	if len(updates) == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}

	todoID := ctx.Param("id")

	// Single conditional update keyed by id and owner. A miss means the todo
	// does not exist or belongs to someone else; both look the same.
	result := db.DB.Model(&models.Todo{}).
		Where("id = ? AND user_id = ?", todoID, userID).
		Updates(updates)

	if result.Error != nil {
		log.Printf("Failed to update todo %s for user %d: %v", todoID, userID, result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	var todo models.Todo

	if err := db.DB.Where("id = ? AND user_id = ?", todoID, userID).First(&todo).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
			return
		}
		log.Printf("Failed to reload todo %s: %v", todoID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	BroadcastTodoEvent(userID, TodoUpdated, todo.ID)

	ctx.JSON(http.StatusOK, gin.H{"todo": todoResponse(todo)})
}

func DeleteTodo(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	todoID := ctx.Param("id")

	result := db.DB.Where("id = ? AND user_id = ?", todoID, userID).Delete(&models.Todo{})

	if result.Error != nil {
		log.Printf("Failed to delete todo %s for user %d: %v", todoID, userID, result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "todo not found"})
		return
	}

	id, _ := strconv.ParseUint(todoID, 10, 64)
	BroadcastTodoEvent(userID, TodoDeleted, uint(id))

	ctx.JSON(http.StatusOK, gin.H{"message": "todo deleted successfully"})
}
