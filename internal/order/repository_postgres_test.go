package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateOrder_SingleTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs("ord-1", 7, 40.00, 9.99, 3.20, 53.19, StatusPending, "2024-06-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(100, 1, 2, 12.50).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(200))
	mock.ExpectExec("DELETE FROM cart_items").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ord := Order{OrderNumber: "ord-1", UserID: 7, Subtotal: 40.00, Shipping: 9.99, Tax: 3.20, Total: 53.19, Status: StatusPending, CreatedAt: "2024-06-01T00:00:00Z"}
	items := []OrderItem{{ProductID: 1, Quantity: 2, Price: 12.50}}

	created, err := repo.CreateOrder(ord, items)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.OrderID != 100 {
		t.Fatalf("expected order id 100, got %d", created.OrderID)
	}
	if len(created.Items) != 1 || created.Items[0].ItemID != 200 || created.Items[0].OrderID != 100 {
		t.Fatalf("unexpected items: %+v", created.Items)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateOrder_RollsBackWhenItemInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	ord := Order{OrderNumber: "ord-2", UserID: 7, Status: StatusPending}
	items := []OrderItem{{ProductID: 1, Quantity: 1, Price: 5.00}}

	if _, err := repo.CreateOrder(ord, items); err == nil {
		t.Fatalf("expected error from failed item insert")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListByUser_AttachesItems(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	orderRows := sqlmock.NewRows([]string{"id", "order_number", "user_id", "subtotal", "shipping", "tax", "total", "status", "created_at"}).
		AddRow(100, "ord-1", 7, 40.00, 9.99, 3.20, 53.19, StatusPending, "2024-06-01T00:00:00Z")
	mock.ExpectQuery("FROM orders").WithArgs(7).WillReturnRows(orderRows)

	itemRows := sqlmock.NewRows([]string{"id", "order_id", "product_id", "name", "quantity", "price"}).
		AddRow(200, 100, 1, "Canvas Tote", 2, 12.50).
		AddRow(201, 100, 2, "Wool Beanie", 1, 15.00)
	mock.ExpectQuery("FROM order_items").WillReturnRows(itemRows)

	orders, err := repo.ListByUser(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
	if len(orders[0].Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(orders[0].Items))
	}
	if orders[0].Items[0].ProductName != "Canvas Tote" {
		t.Fatalf("unexpected item: %+v", orders[0].Items[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
