package converter

import (
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestOrderConverterKeepsItemOrder(t *testing.T) {
	cart := domain.NewCart("c1")
	cart.AddItem(&domain.Product{ID: 9, Name: "Nightstand", Price: 5000}, 1)
	cart.AddItem(&domain.Product{ID: 7, Name: "Coffee Table", Price: 8000}, 2)
	order := domain.NewOrder("0b6f9d3e-4c36-4a8e-9d43-2f7f0b5c2a11", cart, domain.Customer{
		FullName: "Kiran", Email: "k@example.com", Phone: "9876543210",
		Address: "12 MG Road", City: "Pune", State: "MH", Pincode: "411001",
	}, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	conv := NewOrderConverterImpl()
	model, items := conv.ToModel(order)

	require.Equal(t, "Placed", model.Status)
	require.Len(t, items, 2)
	require.Equal(t, 0, items[0].Position)
	require.EqualValues(t, 9, items[0].ProductID)
	require.Equal(t, 1, items[1].Position)

	require.Equal(t, order, conv.ToEntity(model, items))
}
