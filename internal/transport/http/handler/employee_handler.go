package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"employee-records/internal/domain"
	"employee-records/internal/transport/http/response"
)

type EmployeeHandler struct {
	repo domain.EmployeeRepository
	log  *zap.Logger
}

func NewEmployeeHandler(repo domain.EmployeeRepository, log *zap.Logger) *EmployeeHandler {
	return &EmployeeHandler{repo: repo, log: log}
}

// MountAPI attaches the employee routes under the API group.
func (h *EmployeeHandler) MountAPI(g *gin.RouterGroup) {
	g.POST("/employees", h.Create)
	g.GET("/employees", h.List)
	g.PUT("/employees/:employeeId", h.Update)
	g.DELETE("/employees/:employeeId", h.Delete)
}

type createEmployeeIn struct {
	Name          string `json:"name" binding:"required"`
	EmployeeID    string `json:"employee_id" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Department    string `json:"department" binding:"required"`
	DateOfJoining string `json:"date_of_joining" binding:"required"` // "YYYY-MM-DD"
	Role          string `json:"role" binding:"required"`
}

type updateEmployeeIn struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"required"`
	Department    string `json:"department" binding:"required"`
	DateOfJoining string `json:"date_of_joining" binding:"required"`
	Role          string `json:"role" binding:"required"`
}

type employeeOut struct {
	Name          string `json:"name"`
	EmployeeID    string `json:"employee_id"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Department    string `json:"department"`
	DateOfJoining string `json:"date_of_joining"`
	Role          string `json:"role"`
}

func toOut(e domain.Employee) employeeOut {
	return employeeOut{
		Name:          e.Name,
		EmployeeID:    e.EmployeeID,
		Email:         e.Email,
		Phone:         e.Phone,
		Department:    e.Department,
		DateOfJoining: e.DateOfJoining.Format(domain.DateLayout),
		Role:          e.Role,
	}
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var in createEmployeeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}
	joined, err := time.Parse(domain.DateLayout, in.DateOfJoining)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Err("date_of_joining must be YYYY-MM-DD"))
		return
	}

	e := domain.Employee{
		Name:          in.Name,
		EmployeeID:    in.EmployeeID,
		Email:         in.Email,
		Phone:         in.Phone,
		Department:    in.Department,
		DateOfJoining: joined,
		Role:          in.Role,
	}
	if err := h.repo.Create(c.Request.Context(), &e); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmployeeID) {
			c.JSON(http.StatusConflict, response.Err("employee_id already exists"))
			return
		}
		h.log.Error("create employee", zap.String("employee_id", in.EmployeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Err("Error saving employee data"))
		return
	}
	c.JSON(http.StatusCreated, response.MessageData("Employee added successfully", gin.H{
		"id":            e.ID,
		"rows_affected": 1,
	}))
}

// Delete handles DELETE /api/employees/:employeeId.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID := c.Param("employeeId")
	removed, err := h.repo.DeleteByEmployeeID(c.Request.Context(), employeeID)
	if err != nil {
		h.log.Error("delete employee", zap.String("employee_id", employeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Err("Error deleting employee data"))
		return
	}
	if removed == 0 {
		c.JSON(http.StatusNotFound, response.Message("Employee not found"))
		return
	}
	c.JSON(http.StatusOK, response.Message("Employee deleted successfully"))
}

// Update handles PUT /api/employees/:employeeId. The key itself is immutable.
func (h *EmployeeHandler) Update(c *gin.Context) {
	employeeID := c.Param("employeeId")
	var in updateEmployeeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, response.Err(err.Error()))
		return
	}
	joined, err := time.Parse(domain.DateLayout, in.DateOfJoining)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Err("date_of_joining must be YYYY-MM-DD"))
		return
	}

	e := domain.Employee{
		Name:          in.Name,
		Email:         in.Email,
		Phone:         in.Phone,
		Department:    in.Department,
		DateOfJoining: joined,
		Role:          in.Role,
	}
	updated, err := h.repo.UpdateByEmployeeID(c.Request.Context(), employeeID, &e)
	if err != nil {
		h.log.Error("update employee", zap.String("employee_id", employeeID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Err("Error updating employee data"))
		return
	}
	if updated == 0 {
		c.JSON(http.StatusNotFound, response.Message("Employee not found"))
		return
	}
	c.JSON(http.StatusOK, response.Message("Employee updated successfully"))
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.log.Error("list employees", zap.Error(err))
		c.JSON(http.StatusInternalServerError, response.Err("Error fetching employee data"))
		return
	}
	out := make([]employeeOut, 0, len(employees))
	for _, e := range employees {
		out = append(out, toOut(e))
	}
	c.JSON(http.StatusOK, response.Data(out))
}
