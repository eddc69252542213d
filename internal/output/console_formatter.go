package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aiof/projection-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter renders a report as a short heading followed by an aligned table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	table, err := report.Table()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	title := consoleTitles[report.Kind]
	fmt.Fprintln(&buf, title)
	fmt.Fprintln(&buf, strings.Repeat("=", len(title)))

	switch report.Kind {
	case KindAnalyze:
		writeAnalyzeSummary(&buf, report.Analyze)
	case KindLifeEvent:
		fmt.Fprintf(&buf, "Event: %s (%s)\n", report.LifeEvent.Type, report.LifeEvent.Status)
	case KindDebtToIncome:
		fmt.Fprintf(&buf, "Debt to income: %s\n", FormatPercentage(*report.DebtToIncome))
		return buf.Bytes(), nil
	}
	if len(table.Rows) == 0 {
		fmt.Fprintln(&buf, "(no rows)")
		return buf.Bytes(), nil
	}
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(table.Header, "\t")+"\t")
	for _, row := range table.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var consoleTitles = map[ReportKind]string{
	KindAnalyze:        "SNAPSHOT ANALYSIS",
	KindAssetsFV:       "ASSET FUTURE VALUES",
	KindDebtToIncome:   "DEBT TO INCOME",
	KindLifeEvent:      "LIFE EVENT SIMULATION",
	KindLifeEventTypes: "LIFE EVENT TYPES",
	KindCoastFire:      "COAST FIRE SAVINGS",
	KindChildCost:      "COST OF RAISING CHILDREN",
	KindCatalog:        "RATE CATALOG",
}

func writeAnalyzeSummary(buf *bytes.Buffer, r *domain.AnalyzeResult) {
	fmt.Fprintf(buf, "Assets:      %s total, %s mean\n", FormatCurrency(r.AssetsTotal), FormatCurrency(r.AssetsMean))
	fmt.Fprintf(buf, "Liabilities: %s total, %s mean\n", FormatCurrency(r.LiabilitiesTotal), FormatCurrency(r.LiabilitiesMean))
	fmt.Fprintf(buf, "Net worth:   %s\n", FormatCurrency(r.Diff))
	fmt.Fprintf(buf, "Cash to credit card: %s\n", optionalPercentage(r.Analytics.CashToCcRatio))
	fmt.Fprintf(buf, "Credit card to cash: %s\n", optionalPercentage(r.Analytics.CcToCashRatio))
	fmt.Fprintf(buf, "Debt to income:      %s\n", FormatPercentage(r.Analytics.DebtToIncomeRatio))
}

func optionalPercentage(d *decimal.Decimal) string {
	if d == nil {
		return "n/a"
	}
	return FormatPercentage(*d)
}
