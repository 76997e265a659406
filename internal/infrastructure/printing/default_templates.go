package printing

// Template names understood by the engine
const (
	TemplateCustomerInvoice = "customer_invoice"
	TemplateDailySales      = "daily_sales"
)

var defaultTemplates = map[string]string{
	TemplateCustomerInvoice: customerInvoiceTemplate,
	TemplateDailySales:      dailySalesTemplate,
}

const documentStyles = `
<style>
  body { font-family: "Helvetica Neue", Arial, sans-serif; font-size: 12px; color: #222; }
  h1 { font-size: 18px; margin-bottom: 2px; }
  h2 { font-size: 14px; margin-top: 18px; }
  .muted { color: #777; }
  .header { display: flex; justify-content: space-between; border-bottom: 2px solid #222; padding-bottom: 8px; }
  table { width: 100%; border-collapse: collapse; margin-top: 8px; }
  th { text-align: left; border-bottom: 1px solid #999; padding: 4px 6px; font-size: 11px; text-transform: uppercase; color: #555; }
  td { padding: 4px 6px; border-bottom: 1px solid #eee; }
  td.num, th.num { text-align: right; }
  tr.total td { border-top: 1px solid #999; border-bottom: none; font-weight: bold; }
  .footer { margin-top: 24px; font-size: 10px; color: #888; }
</style>
`

const customerInvoiceTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>{{.InvoiceNumber}}</title>` + documentStyles + `</head>
<body>
  <div class="header">
    <div>
      <h1>{{.StationName}}</h1>
      {{if .StationGST}}<div class="muted">GSTIN: {{.StationGST}}</div>{{end}}
    </div>
    <div style="text-align:right">
      <h1>CREDIT STATEMENT</h1>
      <div>{{.InvoiceNumber}}</div>
      <div class="muted">{{formatDate .PeriodFrom}} to {{formatDate .PeriodTo}}</div>
    </div>
  </div>

  <h2>{{.CustomerName}}</h2>
  {{if .CustomerGST}}<div class="muted">GSTIN: {{.CustomerGST}}</div>{{end}}

  <table>
    <tr>
      <th>Date</th><th>Particulars</th>
      <th class="num">Debit</th><th class="num">Credit</th><th class="num">Balance</th>
    </tr>
    <tr>
      <td>{{formatDate .PeriodFrom}}</td><td>Opening balance</td>
      <td class="num"></td><td class="num"></td>
      <td class="num">{{formatMoney .Currency .OpeningBalance}}</td>
    </tr>
    {{range .Entries}}
    <tr>
      <td>{{formatDate .RecordedAt}}</td>
      <td>{{.Description}}</td>
      {{if .IsDebit}}
      <td class="num">{{formatMoney $.Currency .Amount}}</td><td class="num"></td>
      {{else}}
      <td class="num"></td><td class="num">{{formatMoney $.Currency .Amount}}</td>
      {{end}}
      <td class="num">{{formatMoney $.Currency .BalanceAfter}}</td>
    </tr>
    {{end}}
    <tr class="total">
      <td></td><td>Closing balance</td>
      <td class="num">{{formatMoney .Currency .TotalDebits}}</td>
      <td class="num">{{formatMoney .Currency .TotalCredits}}</td>
      <td class="num">{{formatMoney .Currency .ClosingBalance}}</td>
    </tr>
  </table>

  {{if .FooterNote}}<div class="footer">{{.FooterNote}}</div>{{end}}
</body>
</html>`

const dailySalesTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><title>Sales Report</title>` + documentStyles + `</head>
<body>
  <div class="header">
    <div><h1>{{.StationName}}</h1></div>
    <div style="text-align:right">
      <h1>SALES REPORT</h1>
      <div class="muted">{{formatDate .From}} to {{formatDate .To}}</div>
    </div>
  </div>

  <h2>Fuel sales ({{.ShiftCount}} shifts)</h2>
  <table>
    <tr><th>Fuel</th><th class="num">Liters</th><th class="num">Amount</th></tr>
    {{range .FuelSales}}
    <tr>
      <td>{{title .FuelType}}</td>
      <td class="num">{{formatDecimal 3 .Liters}}</td>
      <td class="num">{{formatMoney $.Currency .Amount}}</td>
    </tr>
    {{end}}
  </table>

  <h2>Collections</h2>
  <table>
    <tr><th>Mode</th><th class="num">Amount</th></tr>
    <tr><td>Cash</td><td class="num">{{formatMoney .Currency .Payments.Cash}}</td></tr>
    <tr><td>Card</td><td class="num">{{formatMoney .Currency .Payments.Card}}</td></tr>
    <tr><td>UPI</td><td class="num">{{formatMoney .Currency .Payments.UPI}}</td></tr>
    <tr><td>Credit (indents)</td><td class="num">{{formatMoney .Currency .Payments.Indent}}</td></tr>
    <tr class="total"><td>Total</td><td class="num">{{formatMoney .Currency .Payments.Total}}</td></tr>
  </table>

  <h2>Expenses and cash position</h2>
  <table>
    <tr><td>Expenses</td><td class="num">{{formatMoney .Currency .Expenses}}</td></tr>
    <tr><td>Cash difference</td><td class="num">{{formatMoney .Currency .CashDifference}}</td></tr>
  </table>

  {{if .StockMovement}}
  <h2>Tank stock movement</h2>
  <table>
    <tr><th>Fuel</th><th class="num">Receipts (L)</th><th class="num">Meter sales (L)</th><th class="num">Variation (L)</th></tr>
    {{range .StockMovement}}
    <tr>
      <td>{{title .FuelType}}</td>
      <td class="num">{{formatDecimal 3 .Receipts}}</td>
      <td class="num">{{formatDecimal 3 .MeterSales}}</td>
      <td class="num">{{formatDecimal 3 .Variation}}</td>
    </tr>
    {{end}}
  </table>
  {{end}}
</body>
</html>`
