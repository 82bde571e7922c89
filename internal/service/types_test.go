package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assigna/internal/service"
)

func TestDate_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"dotnet datetime", `"2024-05-01T00:00:00"`, "2024-05-01"},
		{"rfc3339", `"2024-05-01T10:30:00Z"`, "2024-05-01"},
		{"date only", `"2024-05-01"`, "2024-05-01"},
		{"null", `null`, ""},
		{"empty", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d service.Date
			require.NoError(t, json.Unmarshal([]byte(tt.in), &d))
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDate_UnmarshalInvalid(t *testing.T) {
	var d service.Date
	err := json.Unmarshal([]byte(`"not a date"`), &d)
	assert.Error(t, err)
}

func TestDate_Marshal(t *testing.T) {
	d := service.Date{Time: time.Date(2025, 2, 3, 15, 4, 5, 0, time.UTC)}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-03"`, string(b))
}

func TestTask_DecodeWireRecord(t *testing.T) {
	body := `{"tskId":7,"tskTitle":"Ship","deadline":"2030-01-02T00:00:00","tskNote":"n",
		"catId":2,"catName":"Ops","userId":4,"firstName":"Ann",
		"priHigh":false,"priMedium":true,"priLow":false,"pending":true,"complete":false,"userNote":""}`

	var task service.Task
	require.NoError(t, json.Unmarshal([]byte(body), &task))

	assert.Equal(t, 7, task.ID)
	assert.Equal(t, "Ship", task.Title)
	assert.Equal(t, "2030-01-02", task.Deadline.String())
	assert.Equal(t, "Ops", task.CategoryName)
	assert.Equal(t, "Ann", task.AssigneeName)
	assert.Equal(t, "Medium", task.Priority())
	assert.Equal(t, "Pending", task.Status())
	assert.Equal(t, "Not available", task.AssigneeNote())
}

func TestTask_Labels(t *testing.T) {
	assert.Equal(t, "High", service.Task{HighPriority: true}.Priority())
	assert.Equal(t, "Low", service.Task{LowPriority: true}.Priority())
	assert.Equal(t, "Completed", service.Task{Complete: true}.Status())
	assert.Equal(t, "done soon", service.Task{UserNote: "done soon"}.AssigneeNote())
}
