// transactions-check/internal/mockapi/fixtures.go
package mockapi

import (
	"github.com/shopspring/decimal"

	"github.com/example/transactions-check/internal/transaction"
)

// The five documented customers. Customer1 has no transactions,
// Customer2 behaves, Customer3-5 reproduce the defects observed
// upstream so the checks have something real to catch.
const (
	CustomerEmpty       = "b3c8f5d2-4a6e-4c0b-9f7d-8f1c2e3a4b5c"
	CustomerClean       = "746c51bc-bdb9-44d2-9a3e-c4715bc91ee4"
	CustomerBadOrder    = "5723a60b-b7f5-4259-b670-43bd3be1cf90"
	CustomerBadGrouping = "13ef28a8-9488-4d19-ba2f-3ff44912c5e8"
	CustomerBadFields   = "0828a547-f4bf-433a-b3ef-0dc70d6bad8a"
)

func strptr(s string) *string { return &s }

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func fixtures() map[string][]transaction.Transaction {
	return map[string][]transaction.Transaction{
		CustomerEmpty: {},

		// Pending first, descending within each group, debits negative,
		// credits positive.
		CustomerClean: {
			{
				TransactionID: "7b1c9a40-0001-4d55-9e0b-6a4f1c2d3e01",
				Amount:        amt("250.00"), Currency: "EUR",
				MerchantName: strptr("ACME Refunds"),
				Timestamp:    "2025-06-05T14:30:00Z",
				Type:         transaction.TypeCredit, SubType: "Refund",
				Status: transaction.StatusPending, CategoryID: 11,
				Description: "refund for returned goods",
			},
			{
				TransactionID: "7b1c9a40-0002-4d55-9e0b-6a4f1c2d3e02",
				Amount:        amt("-42.10"), Currency: "EUR",
				MerchantName: strptr("Corner Grocery"),
				Timestamp:    "2025-06-05T09:15:00Z",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusPending, CategoryID: 7,
				Description: "groceries",
			},
			{
				TransactionID: "7b1c9a40-0003-4d55-9e0b-6a4f1c2d3e03",
				Amount:        amt("-120.00"), Currency: "EUR",
				MerchantName: strptr("City Utilities"),
				Timestamp:    "2025-06-04T18:45:00Z",
				Type:         transaction.TypeDebit, SubType: "DirectDebit",
				Status: transaction.StatusBooked, CategoryID: 11,
				Description: "electricity bill",
			},
			{
				TransactionID: "7b1c9a40-0004-4d55-9e0b-6a4f1c2d3e04",
				Amount:        amt("1500.00"), Currency: "EUR",
				MerchantName: nil,
				Timestamp:    "2025-06-04T08:00:00Z",
				Type:         transaction.TypeCredit, SubType: "Transfer",
				Status: transaction.StatusBooked, CategoryID: 3,
				Description: "salary",
			},
			{
				TransactionID: "7b1c9a40-0005-4d55-9e0b-6a4f1c2d3e05",
				Amount:        amt("-9.99"), Currency: "EUR",
				MerchantName: strptr("StreamFlix"),
				Timestamp:    "2025-06-01T12:00:00Z",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 14,
				Description: "subscription",
			},
		},

		// Ascending pair at the head of the list.
		CustomerBadOrder: {
			{
				TransactionID: "9d2e7f10-0001-4a8c-b6d1-2f3a4b5c6d01",
				Amount:        amt("-15.00"), Currency: "USD",
				MerchantName: strptr("Bus Co"),
				Timestamp:    "2024-02-01T10:00:00Z",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 5,
				Description: "bus ticket",
			},
			{
				TransactionID: "9d2e7f10-0002-4a8c-b6d1-2f3a4b5c6d02",
				Amount:        amt("320.40"), Currency: "USD",
				MerchantName: nil,
				Timestamp:    "2024-03-01T10:00:00Z",
				Type:         transaction.TypeCredit, SubType: "Transfer",
				Status: transaction.StatusBooked, CategoryID: 3,
				Description: "incoming transfer",
			},
			{
				TransactionID: "9d2e7f10-0003-4a8c-b6d1-2f3a4b5c6d03",
				Amount:        amt("-60.00"), Currency: "USD",
				MerchantName: strptr("Hotel Plaza"),
				Timestamp:    "2024-01-01T10:00:00Z",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 9,
				Description: "hotel deposit",
			},
		},

		// A Pending record after a Booked one, and a negative credit.
		CustomerBadGrouping: {
			{
				TransactionID: "c4f8a2d0-0001-49b3-8e7a-1d2c3b4a5f01",
				Amount:        amt("-30.00"), Currency: "SGD",
				MerchantName: strptr("Hawker Stall"),
				Timestamp:    "2025-05-10T10:00:00Z",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 7,
				Description: "lunch",
			},
			{
				TransactionID: "c4f8a2d0-0002-49b3-8e7a-1d2c3b4a5f02",
				Amount:        amt("20.00"), Currency: "SGD",
				MerchantName: nil,
				Timestamp:    "2025-05-09T10:00:00Z",
				Type:         transaction.TypeCredit, SubType: "Transfer",
				Status: transaction.StatusPending, CategoryID: 3,
				Description: "friend payback",
			},
			{
				TransactionID: "c4f8a2d0-0003-49b3-8e7a-1d2c3b4a5f03",
				Amount:        amt("-15.25"), Currency: "SGD",
				MerchantName: strptr("Book Nook"),
				Timestamp:    "2025-05-08T10:00:00Z",
				Type:         transaction.TypeCredit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 12,
				Description: "paperback",
			},
		},

		// Missing currency, day-first timestamp, positive debit.
		CustomerBadFields: {
			{
				TransactionID: "e6a1b3c5-0001-47d9-a2f4-8b9c0d1e2f01",
				Amount:        amt("200.00"), Currency: "GBP",
				MerchantName: nil,
				Timestamp:    "2024-03-05T11:00:00Z",
				Type:         transaction.TypeCredit, SubType: "Transfer",
				Status: transaction.StatusBooked, CategoryID: 3,
				Description: "incoming transfer",
			},
			{
				TransactionID: "e6a1b3c5-0002-47d9-a2f4-8b9c0d1e2f02",
				Amount:        amt("-10.00"), Currency: "GBP",
				MerchantName: strptr("Coffee Cart"),
				Timestamp:    "01-03-2024",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 7,
				Description: "coffee",
			},
			{
				TransactionID: "e6a1b3c5-0003-47d9-a2f4-8b9c0d1e2f03",
				Amount:        amt("50.00"), Currency: "GBP",
				MerchantName: strptr("Gadget World"),
				Timestamp:    "2024-03-02T09:30:00Z",
				Type:         transaction.TypeDebit, SubType: "CardPayment",
				Status: transaction.StatusBooked, CategoryID: 18,
				Description: "charging cable",
			},
			{
				TransactionID: "e6a1b3c5-0004-47d9-a2f4-8b9c0d1e2f04",
				Amount:        amt("75.00"), Currency: "",
				MerchantName: nil,
				Timestamp:    "2024-03-01T08:00:00Z",
				Type:         transaction.TypeCredit, SubType: "Transfer",
				Status: transaction.StatusBooked, CategoryID: 3,
				Description: "reimbursement",
			},
		},
	}
}
