package mpesa

type amountMode int

const (
	// amountSingle is one signed column, negative for money out.
	amountSingle amountMode = iota
	// amountSplit is a "Paid In" and a "Withdrawn" column.
	amountSplit
)

// Profile is the column layout of one statement export.
type Profile struct {
	Name        string
	ReceiptCol  string
	TimeCol     string
	DetailsCol  string
	StatusCol   string // optional
	AmountMode  amountMode
	AmountCol   string
	PaidInCol   string
	WithdrawCol string
}

func (p Profile) requiredCols() []string {
	cols := []string{p.ReceiptCol, p.TimeCol, p.DetailsCol}

	if p.AmountMode == amountSplit {
		return append(cols, p.PaidInCol, p.WithdrawCol)
	}

	return append(cols, p.AmountCol)
}

// profiles are tried in order; the full statement goes first.
var profiles = []Profile{
	{
		Name:        "statement",
		ReceiptCol:  "Receipt No.",
		TimeCol:     "Completion Time",
		DetailsCol:  "Details",
		StatusCol:   "Transaction Status",
		AmountMode:  amountSplit,
		PaidInCol:   "Paid In",
		WithdrawCol: "Withdrawn",
	},
	{
		Name:       "app",
		ReceiptCol: "Transaction ID",
		TimeCol:    "Date",
		DetailsCol: "Description",
		AmountMode: amountSingle,
		AmountCol:  "Amount",
	},
}

// timeLayouts are the timestamp formats seen in statement exports.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"2006-01-02",
	"02/01/2006",
}
