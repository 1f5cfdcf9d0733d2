package cli

import (
	"bytes"
	"context"
	"testing"

	"retail-cli/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFlags_Set(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		expected  itemFlags
		expectErr string
	}{
		{
			name:   "Single item",
			values: []string{"10:2"},
			expected: itemFlags{
				{ProductID: 10, Quantity: 2},
			},
		},
		{
			name:   "Repeated items accumulate",
			values: []string{"10:2", "11:1"},
			expected: itemFlags{
				{ProductID: 10, Quantity: 2},
				{ProductID: 11, Quantity: 1},
			},
		},
		{
			name:      "Missing separator",
			values:    []string{"10"},
			expectErr: `invalid item "10", expected productID:quantity`,
		},
		{
			name:      "Non-numeric product ID",
			values:    []string{"abc:2"},
			expectErr: `invalid product ID in item "abc:2"`,
		},
		{
			name:      "Non-numeric quantity",
			values:    []string{"10:many"},
			expectErr: `invalid quantity in item "10:many"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var items itemFlags

			var err error
			for _, v := range tt.values {
				if err = items.Set(v); err != nil {
					break
				}
			}

			if tt.expectErr != "" {
				require.Error(t, err)
				assert.EqualError(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestItemFlags_String(t *testing.T) {
	items := itemFlags{
		{ProductID: 10, Quantity: 2},
		{ProductID: 11, Quantity: 1},
	}

	assert.Equal(t, "10:2,11:1", items.String())
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	var out bytes.Buffer
	app := New(nil, nil, nil, nil, nil, nil, zerolog.Nop(), &out)

	err := app.Run(context.Background(), []string{"bogus"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown command "bogus"`)
}

func TestApp_Run_NoArgsPrintsUsage(t *testing.T) {
	var out bytes.Buffer
	app := New(nil, nil, nil, nil, nil, nil, zerolog.Nop(), &out)

	err := app.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage: retail")
}

func TestApp_PrintResult(t *testing.T) {
	var out bytes.Buffer
	app := New(nil, nil, nil, nil, nil, nil, zerolog.Nop(), &out)

	err := app.printResult("Order cancelled:", model.Order{Status: model.OrderStatusCancelled})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Order cancelled:\n")
	assert.Contains(t, out.String(), `"status": "CANCELLED"`)
}