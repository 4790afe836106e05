package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRegistration struct {
	Token string `validate:"required,min=6,max=32"`
	Name  string `validate:"required,max=255"`
	Email string `validate:"required,email"`
}

type testEvent struct {
	Slug      string    `validate:"required,slug"`
	Quota     int       `validate:"required,min=1,max=10000"`
	StartTime time.Time `validate:"required"`
	EndTime   time.Time `validate:"required,gtfield=StartTime"`
	Mode      string    `validate:"omitempty,oneof=abort collect"`
}

func validEvent() testEvent {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return testEvent{
		Slug:      "go-meetup-2025",
		Quota:     100,
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
	}
}

// TestValidateStruct_ValidData tests validation with valid data
func TestValidateStruct_ValidData(t *testing.T) {
	reg := testRegistration{Token: "AB12CD34EF56", Name: "Ada", Email: "ada@example.com"}
	assert.NoError(t, ValidateStruct(reg))
	assert.NoError(t, ValidateStruct(validEvent()))
}

// TestValidateStruct_Slug tests the custom slug rule
func TestValidateStruct_Slug(t *testing.T) {
	testCases := []struct {
		name       string
		slug       string
		shouldFail bool
	}{
		{"Simple", "meetup", false},
		{"With dashes", "go-meetup-2025", false},
		{"Uppercase", "Go-Meetup", true},
		{"Leading dash", "-meetup", true},
		{"Double dash", "go--meetup", true},
		{"Space", "go meetup", true},
		{"Empty", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := validEvent()
			event.Slug = tc.slug

			err := ValidateStruct(event)
			if tc.shouldFail {
				assert.Error(t, err, "Should fail validation")
			} else {
				assert.NoError(t, err, "Should pass validation")
			}
		})
	}
}

// TestValidateStruct_QuotaRange tests the quota bounds
func TestValidateStruct_QuotaRange(t *testing.T) {
	testCases := []struct {
		name       string
		quota      int
		shouldFail bool
	}{
		{"Minimum", 1, false},
		{"Maximum", 10000, false},
		{"Zero", 0, true},
		{"Above maximum", 10001, true},
		{"Negative", -5, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			event := validEvent()
			event.Quota = tc.quota

			err := ValidateStruct(event)
			if tc.shouldFail {
				assert.Error(t, err, "Should fail validation")
			} else {
				assert.NoError(t, err, "Should pass validation")
			}
		})
	}
}

// TestGetValidationErrors_Messages tests every formatted message
func TestGetValidationErrors_Messages(t *testing.T) {
	testCases := []struct {
		name          string
		data          any
		expectedError string
	}{
		{
			name:          "Required error",
			data:          testRegistration{Token: "AB12CD34EF56", Email: "ada@example.com"},
			expectedError: "Name is required",
		},
		{
			name:          "Email error",
			data:          testRegistration{Token: "AB12CD34EF56", Name: "Ada", Email: "not-an-email"},
			expectedError: "Email must be a valid email",
		},
		{
			name:          "Min error",
			data:          testRegistration{Token: "AB1", Name: "Ada", Email: "ada@example.com"},
			expectedError: "Token must be at least 6",
		},
		{
			name: "Max error",
			data: func() testEvent {
				e := validEvent()
				e.Quota = 20000
				return e
			}(),
			expectedError: "Quota must be at most 10000",
		},
		{
			name: "Gtfield error",
			data: func() testEvent {
				e := validEvent()
				e.EndTime = e.StartTime.Add(-time.Hour)
				return e
			}(),
			expectedError: "EndTime must be after StartTime",
		},
		{
			name: "Oneof error",
			data: func() testEvent {
				e := validEvent()
				e.Mode = "retry"
				return e
			}(),
			expectedError: "Mode must be one of abort collect",
		},
		{
			name: "Slug error",
			data: func() testEvent {
				e := validEvent()
				e.Slug = "Bad Slug"
				return e
			}(),
			expectedError: "Slug may only contain lowercase letters, numbers and dashes",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateStruct(tc.data)
			require.Error(t, err, "Should have validation error")

			errors := GetValidationErrors(err)
			assert.Contains(t, errors, tc.expectedError)
		})
	}
}

// TestGetValidationErrors_NonValidationError tests handling of non-validation errors
func TestGetValidationErrors_NonValidationError(t *testing.T) {
	errors := GetValidationErrors(assert.AnError)
	assert.Empty(t, errors, "Non-validation errors should return empty slice")
}

// TestGetValidationErrors_NilError tests handling of nil error
func TestGetValidationErrors_NilError(t *testing.T) {
	errors := GetValidationErrors(nil)
	assert.Empty(t, errors, "Nil error should return empty slice")
}
