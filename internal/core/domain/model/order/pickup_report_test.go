package order_test

import (
	"testing"

	"linenflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupOutcomeValidate(t *testing.T) {
	t.Run("should accept all defined outcomes", func(t *testing.T) {
		outcomes := []order.PickupOutcome{
			order.PickupOutcomeCollected, order.PickupOutcomePartial, order.PickupOutcomeNothingFound,
		}
		for _, o := range outcomes {
			assert.NoError(t, o.Validate(), o.String())
		}
	})

	t.Run("should reject unknown outcome", func(t *testing.T) {
		err := order.PickupOutcomeUnknown.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup outcome is invalid")
	})
}

func TestPickupOutcomeFromString(t *testing.T) {
	t.Run("should map wire strings", func(t *testing.T) {
		cases := map[string]order.PickupOutcome{
			"collected":     order.PickupOutcomeCollected,
			"partial":       order.PickupOutcomePartial,
			"nothing_found": order.PickupOutcomeNothingFound,
		}
		for wire, want := range cases {
			got, err := order.PickupOutcomeFromString(wire)

			require.NoError(t, err, wire)
			assert.Equal(t, want, got)
			assert.Equal(t, wire, got.String())
		}
	})

	t.Run("should reject unrecognized string", func(t *testing.T) {
		_, err := order.PickupOutcomeFromString("misplaced")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `"misplaced" is not a valid pickup outcome`)
	})

	t.Run("should reject unknown even though it has a string form", func(t *testing.T) {
		_, err := order.PickupOutcomeFromString("unknown")

		assert.Error(t, err)
	})
}

func TestNewPickupReport(t *testing.T) {
	t.Run("should create report with items and note", func(t *testing.T) {
		items := []order.PickupReportItem{
			{ItemID: "sheet-queen", Name: "Queen Sheet Set", Quantity: 2, OK: true},
			{ItemID: "towel-bath", Name: "Bath Towel", Quantity: 4, OK: true},
		}

		report, err := order.NewPickupReport(order.PickupOutcomeCollected, "all good", items)

		require.NoError(t, err)
		require.NoError(t, report.Validate())
		assert.Equal(t, order.PickupOutcomeCollected, report.Outcome())
		assert.Equal(t, "all good", report.Note())
		assert.Equal(t, items, report.Items())
	})

	t.Run("should create report with no items", func(t *testing.T) {
		report, err := order.NewPickupReport(order.PickupOutcomeNothingFound, "", nil)

		require.NoError(t, err)
		assert.Empty(t, report.Items())
	})

	t.Run("should reject invalid outcome", func(t *testing.T) {
		_, err := order.NewPickupReport(order.PickupOutcomeUnknown, "", nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "pickup outcome is invalid")
	})
}

func TestPickupReportValidate(t *testing.T) {
	t.Run("should reject report bypassing constructor", func(t *testing.T) {
		var report order.PickupReport

		assert.ErrorIs(t, report.Validate(), order.ErrPickupReportIsNotConstructed)
	})
}

func TestPickupReportHasIssues(t *testing.T) {
	t.Run("full collection with all items ok has no issues", func(t *testing.T) {
		report, err := order.NewPickupReport(order.PickupOutcomeCollected, "",
			[]order.PickupReportItem{{ItemID: "sheet-queen", Name: "Queen Sheet Set", Quantity: 2, OK: true}})
		require.NoError(t, err)

		assert.False(t, report.HasIssues())
	})

	t.Run("partial outcome always flags issues", func(t *testing.T) {
		report, err := order.NewPickupReport(order.PickupOutcomePartial, "", nil)
		require.NoError(t, err)

		assert.True(t, report.HasIssues())
	})

	t.Run("nothing found always flags issues", func(t *testing.T) {
		report, err := order.NewPickupReport(order.PickupOutcomeNothingFound, "", nil)
		require.NoError(t, err)

		assert.True(t, report.HasIssues())
	})

	t.Run("a single non ok line flags issues even on full collection", func(t *testing.T) {
		report, err := order.NewPickupReport(order.PickupOutcomeCollected, "",
			[]order.PickupReportItem{
				{ItemID: "sheet-queen", Name: "Queen Sheet Set", Quantity: 2, OK: true},
				{ItemID: "towel-bath", Name: "Bath Towel", Quantity: 4, OK: false},
			})
		require.NoError(t, err)

		assert.True(t, report.HasIssues())
	})
}
