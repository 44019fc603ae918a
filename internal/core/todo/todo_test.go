package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_ConfigExhaustive(t *testing.T) {
	for _, c := range Categories {
		cfg := c.Config()
		assert.NotEmpty(t, cfg.Label, "category %s has no label", c)
		assert.NotEmpty(t, cfg.Icon, "category %s has no icon", c)
		assert.NotEmpty(t, cfg.Color, "category %s has no color token", c)
	}
}

func TestCategory_ConfigUnknownFallsBack(t *testing.T) {
	cfg := Category("dispatch").Config()
	assert.Equal(t, "dispatch", cfg.Label)
	assert.Equal(t, ColorTokenMuted, cfg.Color)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input string
		want  Category
		ok    bool
	}{
		{"billing", CategoryBilling, true},
		{"Billing", CategoryBilling, true},
		{"cancel", CategoryCancel, true},
		{"dispatch", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseCategory(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestItem_CreatedDate(t *testing.T) {
	item := Item{CreatedAt: "2024-01-22 13:45"}
	assert.Equal(t, "2024-01-22", item.CreatedDate())

	short := Item{CreatedAt: "oops"}
	assert.Equal(t, "oops", short.CreatedDate())
}

func TestItem_Validate(t *testing.T) {
	valid := Item{
		ID:        "t1",
		CaseID:    "1150122-07",
		Content:   "call the family back",
		Category:  CategoryContact,
		Status:    StatusPending,
		CreatedAt: "2024-01-22 09:30",
	}
	require.NoError(t, valid.Validate())

	t.Run("missing id", func(t *testing.T) {
		item := valid
		item.ID = ""
		assert.Error(t, item.Validate())
	})

	t.Run("unknown category", func(t *testing.T) {
		item := valid
		item.Category = "dispatch"
		assert.Error(t, item.Validate())
	})

	t.Run("unknown status", func(t *testing.T) {
		item := valid
		item.Status = "archived"
		assert.Error(t, item.Validate())
	})

	t.Run("bad created_at", func(t *testing.T) {
		item := valid
		item.CreatedAt = "2024-01-22T09:30:00Z"
		assert.Error(t, item.Validate())
	})

	t.Run("bad due_date", func(t *testing.T) {
		item := valid
		item.DueDate = "Jan 31"
		assert.Error(t, item.Validate())
	})

	t.Run("valid due_date", func(t *testing.T) {
		item := valid
		item.DueDate = "2024-01-31"
		assert.NoError(t, item.Validate())
	})
}
