package render

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Invoice {{.Number}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: 'DM Sans', sans-serif; font-size: 11pt; color: #222; line-height: 1.6; }
  .page { max-width: 760px; margin: 0 auto; padding: 48px 52px; }
  .header { display: flex; justify-content: space-between; margin-bottom: 28px; padding-bottom: 20px; border-bottom: 4px solid #CC2222; }
  .studio { font-family: 'DM Serif Display', serif; font-size: 24pt; color: #CC2222; }
  .doc-number { font-size: 10pt; color: #888; text-align: right; }
  .status { display: inline-block; padding: 3px 10px; border-radius: 20px; font-size: 9pt; font-weight: 600; background: #f5f5f5; }
  table { width: 100%; border-collapse: collapse; margin: 14px 0; }
  th { background: #111; color: #fff; padding: 8px 12px; text-align: left; font-size: 9pt; }
  td { padding: 8px 12px; border-bottom: 1px solid #eee; font-size: 10pt; }
  .totals td { border: none; padding: 4px 12px; }
  .totals .grand td { font-weight: 700; font-size: 12pt; border-top: 2px solid #111; }
  .label { font-size: 8pt; font-weight: 700; text-transform: uppercase; color: #888; }
  .footer { margin-top: 36px; padding-top: 14px; border-top: 2px solid #CC2222; text-align: center; font-size: 8.5pt; color: #888; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <div class="studio">CGY</div>
    <div class="doc-number">
      <div>Invoice #{{.Number}}</div>
      <div>Date: {{.InvoiceDate}}</div>
      {{if .DueDate}}<div>Due: {{.DueDate}}</div>{{end}}
      <div class="status">{{.Status}}</div>
    </div>
  </div>

  <div class="label">Billed To</div>
  <p><strong>{{.ClientName}}</strong></p>
  {{if .ClientEmail}}<p>{{.ClientEmail}}</p>{{end}}
  {{if .ClientPhone}}<p>{{.ClientPhone}}</p>{{end}}
  {{if .ClientAddress}}<p>{{.ClientAddress}}</p>{{end}}

  <table>
    <thead><tr><th>Description</th><th>Rate</th><th>Qty</th><th>Amount ({{.Currency}})</th></tr></thead>
    <tbody>
      {{range .Services}}<tr><td>{{.Description}}</td><td>{{.Rate}}</td><td>{{.Quantity}}</td><td>{{.Amount}}</td></tr>
      {{end}}
    </tbody>
  </table>

  <table class="totals">
    <tr><td>Subtotal</td><td>{{.Currency}} {{.Subtotal}}</td></tr>
    {{if .HasDiscount}}<tr><td>Discount</td><td>−{{.Currency}} {{.Discount}}</td></tr>
    <tr><td>Net Sales</td><td>{{.Currency}} {{.NetSales}}</td></tr>{{end}}
    {{if .HasTax}}<tr><td>Tax</td><td>{{.Currency}} {{.Tax}}</td></tr>{{end}}
    <tr class="grand"><td>Total</td><td>{{.Currency}} {{.Total}}</td></tr>
    <tr><td>Paid</td><td>{{.Currency}} {{.Paid}}</td></tr>
    <tr><td>Balance Due</td><td>{{.Currency}} {{.Balance}}</td></tr>
  </table>

  {{if .History}}
  <div class="label">Payment History</div>
  <table>
    <thead><tr><th>Date</th><th>Method</th><th>Amount ({{.Currency}})</th><th>Notes</th></tr></thead>
    <tbody>
      {{range .History}}<tr><td>{{.Date}}</td><td>{{.Method}}</td><td>{{.Amount}}</td><td>{{.Notes}}</td></tr>
      {{end}}
    </tbody>
  </table>
  {{end}}

  <div class="label">Payment Details</div>
  {{if .PaymentMethod}}<p>Method: {{.PaymentMethod}}</p>{{end}}
  {{if .AccountNumber}}<p>Account: {{.AccountNumber}}</p>{{end}}
  {{if .PaymentLink}}<p>Pay online: {{.PaymentLink}}</p>{{end}}
  {{if .Notes}}<p>{{.Notes}}</p>{{end}}

  <div class="footer">Curio Graphics Yard — Koforidua, Ghana — curiographicsyard@gmail.com</div>
</div>
</body>
</html>`

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Receipt {{.ReceiptNumber}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: 'DM Sans', sans-serif; font-size: 11pt; color: #222; line-height: 1.6; }
  .page { max-width: 560px; margin: 0 auto; padding: 48px 52px; }
  .header { text-align: center; margin-bottom: 24px; padding-bottom: 18px; border-bottom: 4px solid #16a34a; }
  .studio { font-family: 'DM Serif Display', serif; font-size: 22pt; color: #CC2222; }
  .title { font-size: 13pt; font-weight: 700; color: #16a34a; text-transform: uppercase; letter-spacing: 0.08em; margin-top: 6px; }
  .row { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #eee; }
  .label { font-size: 8.5pt; font-weight: 700; text-transform: uppercase; color: #888; }
  .amount { font-family: 'DM Serif Display', serif; font-size: 20pt; text-align: center; margin: 18px 0; }
  .footer { margin-top: 30px; padding-top: 12px; border-top: 2px solid #16a34a; text-align: center; font-size: 8.5pt; color: #888; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <div class="studio">CGY</div>
    <div class="title">{{if .Partial}}Payment Receipt{{else}}Receipt{{end}}</div>
  </div>

  <div class="row"><span class="label">Receipt No.</span><span>{{.ReceiptNumber}}</span></div>
  <div class="row"><span class="label">Invoice No.</span><span>{{.InvoiceNumber}}</span></div>
  <div class="row"><span class="label">Received From</span><span>{{.ClientName}}</span></div>
  {{if .Method}}<div class="row"><span class="label">Payment Method</span><span>{{.Method}}</span></div>{{end}}
  {{if .Date}}<div class="row"><span class="label">Payment Date</span><span>{{.Date}}</span></div>{{end}}

  <div class="amount">{{.Currency}} {{.AmountDue}}</div>

  <div class="row"><span class="label">Paid To Date</span><span>{{.Currency}} {{.PaidToDate}}</span></div>
  <div class="row"><span class="label">Remaining Balance</span><span>{{.Currency}} {{.Remaining}}</span></div>

  <div class="footer">Thank you for your business — Curio Graphics Yard</div>
</div>
</body>
</html>`

const contractTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>Contract {{.Number}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: 'DM Sans', sans-serif; font-size: 11pt; color: #222; line-height: 1.65; }
  .page { max-width: 760px; margin: 0 auto; padding: 48px 52px; }
  .header { display: flex; justify-content: space-between; margin-bottom: 28px; padding-bottom: 22px; border-bottom: 4px solid #CC2222; }
  .studio { font-family: 'DM Serif Display', serif; font-size: 26pt; color: #CC2222; }
  .badge-head { text-align: right; font-size: 9pt; color: #888; }
  .contract-type { font-size: 11pt; font-weight: 700; color: #CC2222; text-transform: uppercase; }
  .legal-banner { background: #111; color: #fff; text-align: center; padding: 10px 16px; font-size: 9pt; margin-bottom: 26px; border-radius: 3px; }
  h2 { font-family: 'DM Serif Display', serif; font-size: 14pt; color: #CC2222; margin: 26px 0 10px; padding-bottom: 6px; border-bottom: 1.5px solid #CC222233; }
  h3 { font-size: 10.5pt; font-weight: 700; margin: 14px 0 6px; }
  p, li { margin-bottom: 6px; }
  ul { padding-left: 20px; margin-bottom: 8px; }
  table { width: 100%; border-collapse: collapse; margin: 12px 0; }
  th { background: #111; color: #fff; padding: 8px 12px; text-align: left; font-size: 9pt; }
  td { padding: 8px 12px; border-bottom: 1px solid #eee; font-size: 10pt; }
  .grid { display: grid; grid-template-columns: 1fr 1fr; border: 1px solid #ddd; border-radius: 4px; margin-bottom: 16px; }
  .cell { padding: 8px 12px; border-bottom: 1px solid #eee; }
  .cell-label { font-size: 7.5pt; font-weight: 700; text-transform: uppercase; color: #888; }
  .cell-val { font-size: 10pt; font-weight: 600; }
  .pay-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; margin: 12px 0; }
  .pay-box { border: 1.5px solid #CC2222; border-radius: 4px; padding: 12px 14px; }
  .pay-label { font-size: 8pt; font-weight: 700; color: #CC2222; text-transform: uppercase; }
  .pay-amount { font-family: 'DM Serif Display', serif; font-size: 16pt; }
  .badge { display: inline-block; padding: 4px 10px; border-radius: 20px; font-size: 8.5pt; font-weight: 600; margin-right: 6px; }
  .badge-yes { background: #f0fdf4; color: #16a34a; border: 1px solid #86efac; }
  .badge-no { background: #fef2f2; color: #dc2626; border: 1px solid #fca5a5; }
  .warn-box { background: #fff8f0; border: 1.5px solid #CC222266; border-radius: 4px; padding: 10px 14px; margin: 12px 0; font-size: 9.5pt; color: #7c3a00; }
  .sig-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 32px; margin-top: 20px; }
  .sig-line { border-bottom: 1.5px solid #333; margin-bottom: 5px; height: 36px; }
  .sig-label { font-size: 8pt; color: #888; margin-bottom: 12px; }
  .footer { margin-top: 36px; padding-top: 14px; border-top: 2px solid #CC2222; text-align: center; font-size: 8.5pt; color: #888; }
</style>
</head>
<body>
<div class="page">
  <div class="header">
    <div>
      <div class="studio">CGY</div>
      <div style="font-size:9pt;color:#666;text-transform:uppercase;letter-spacing:0.08em;">{{.DesignerName}}</div>
    </div>
    <div class="badge-head">
      <div class="contract-type">{{.TypeLabel}}</div>
      <div>Contract #{{.Number}}</div>
      <div>Dated: {{.ContractDate}}</div>
    </div>
  </div>

  <div class="legal-banner">This is a legally binding agreement. Both parties must read all terms before signing.</div>

  <h2>1. Parties &amp; Project Overview</h2>
  <div class="grid">
    <div class="cell"><div class="cell-label">Designer / Studio</div><div class="cell-val">{{.DesignerName}}</div></div>
    <div class="cell"><div class="cell-label">Designer Email</div><div class="cell-val">{{.DesignerEmail}}</div></div>
    {{if .DesignerPhone}}<div class="cell"><div class="cell-label">Designer Phone</div><div class="cell-val">{{.DesignerPhone}}</div></div>{{end}}
    <div class="cell"><div class="cell-label">Designer Address</div><div class="cell-val">{{.DesignerAddress}}</div></div>
    <div class="cell"><div class="cell-label">Client Name</div><div class="cell-val">{{.ClientName}}</div></div>
    <div class="cell"><div class="cell-label">Client Company / Brand</div><div class="cell-val">{{.ClientCompany}}</div></div>
    <div class="cell"><div class="cell-label">Client Email</div><div class="cell-val">{{.ClientEmail}}</div></div>
    <div class="cell"><div class="cell-label">Client Phone</div><div class="cell-val">{{.ClientPhone}}</div></div>
    {{if .ClientAddress}}<div class="cell"><div class="cell-label">Client Address</div><div class="cell-val">{{.ClientAddress}}</div></div>{{end}}
    <div class="cell"><div class="cell-label">Project Title</div><div class="cell-val">{{.ProjectTitle}}</div></div>
    <div class="cell"><div class="cell-label">Start Date</div><div class="cell-val">{{.StartDate}}</div></div>
    <div class="cell"><div class="cell-label">Estimated End Date</div><div class="cell-val">{{.EndDate}}</div></div>
  </div>

  <h2>2. Services Selected &amp; Agreed Rates</h2>
  {{if .Services}}
  <table>
    <thead><tr><th>Service</th><th>Rate (GHS)</th><th>Rate (USD Eq.)</th></tr></thead>
    <tbody>
      {{range .Services}}<tr><td>{{.Label}}</td><td>{{.GHSRange}}</td><td>{{.USDRange}}</td></tr>
      {{end}}
    </tbody>
  </table>
  {{else}}<p>No services selected.</p>{{end}}
  {{if .CustomServices}}<p><strong>Additional / Custom Services:</strong> {{.CustomServices}}</p>{{end}}
  <div class="grid">
    <div class="cell"><div class="cell-label">Agreed Project Rate</div><div class="cell-val">{{.Currency}} {{.AgreedAmount}}</div></div>
    <div class="cell"><div class="cell-label">Currency</div><div class="cell-val">{{.Currency}}</div></div>
    <div class="cell"><div class="cell-label">Deposit Percentage</div><div class="cell-val">{{.DepositPercent}}%</div></div>
    <div class="cell"><div class="cell-label">Revisions Included</div><div class="cell-val">{{.RevisionsIncluded}} rounds</div></div>
  </div>

  <h2>3. Scope of Work &amp; Deliverables</h2>
  {{if .Deliverables}}<p>{{.Deliverables}}</p>{{else}}
  <ul>
    <li>Deliverables as described in Section 2 services above</li>
    <li>Final files in agreed formats (PNG, JPG, SVG, PDF as applicable)</li>
    <li>Source/native files only if Section 8 indicates inclusion</li>
  </ul>
  {{end}}
  <div class="warn-box">Any work not explicitly listed above is considered OUT OF SCOPE and will be quoted and billed separately via written Change Order.</div>
  {{if .SpecialRequirements}}<h3>Special Requirements</h3><p>{{.SpecialRequirements}}</p>{{end}}

  <h2>4. Project Timeline &amp; Milestones</h2>
  <table>
    <thead><tr><th>Phase</th><th>Deliverable</th><th>Due Date</th><th>Payment Due</th></tr></thead>
    <tbody>
      {{range .Phases}}<tr><td>{{.Phase}}</td><td>{{.Deliverable}}</td><td>{{.DueDate}}</td><td>{{.PaymentDue}}</td></tr>
      {{end}}
    </tbody>
  </table>
  <p style="font-size:9.5pt;color:#7c3a00;">If the Client fails to respond within 5 business days of any submission, the timeline shifts forward accordingly. A Rush Fee of {{.RushFeePercent}}% applies for urgent delivery after a Client-caused delay.</p>

  <h2>5. Revision Policy</h2>
  <table>
    <thead><tr><th>Item</th><th>Terms</th></tr></thead>
    <tbody>
      <tr><td>Included Revisions</td><td>{{.RevisionsIncluded}} rounds per deliverable</td></tr>
      <tr><td>Additional Revisions</td><td>{{.Currency}} {{.RevisionRate}} per additional round</td></tr>
      <tr><td>New Design Direction</td><td>Treated as a new project — re-quoted separately</td></tr>
    </tbody>
  </table>
  <p>A "revision" means minor changes to an approved concept. Scrapping the direction entirely = new project. Once a design is approved in writing, that phase is <strong>closed</strong>.</p>

  <h2>6. Payment Terms</h2>
  <div class="pay-grid">
    <div class="pay-box">
      <div class="pay-label">Deposit Due at Signing</div>
      <div class="pay-amount">{{.Currency}} {{.DepositAmount}}</div>
      <div style="font-size:8.5pt;color:#666;">{{.DepositPercent}}% — Work begins only after this is received</div>
    </div>
    <div class="pay-box">
      <div class="pay-label">Balance Due at Final Delivery</div>
      <div class="pay-amount">{{.Currency}} {{.BalanceAmount}}</div>
      <div style="font-size:8.5pt;color:#666;">{{.BalancePercent}}% — Paid before final files are released</div>
    </div>
  </div>
  <div class="grid">
    <div class="cell"><div class="cell-label">Payment Account</div><div class="cell-val">{{.PaymentAccount}}</div></div>
    <div class="cell"><div class="cell-label">Institution</div><div class="cell-val">{{.PaymentInstitution}}</div></div>
    <div class="cell"><div class="cell-label">Beneficiary</div><div class="cell-val">{{.PaymentBeneficiary}}</div></div>
  </div>
  <h3>Kill Fee — Cancellation Schedule</h3>
  <table>
    <thead><tr><th>Project Completion at Cancellation</th><th>Amount Owed</th></tr></thead>
    <tbody>
      <tr><td>Before concepts delivered</td><td>Client forfeits deposit — no refund</td></tr>
      <tr><td>After concepts delivered</td><td>75% of total project rate</td></tr>
      <tr><td>Near completion (revisions done)</td><td>100% of total project rate</td></tr>
    </tbody>
  </table>
  <p>Late payments after 7 days incur a holding fee of GHS 50 / USD 5 per day. Final files are withheld until full payment is confirmed.</p>

  <h2>7. Client Responsibilities</h2>
  <ul>
    <li>Provide all required content (text, logos, brand assets, references) before work begins.</li>
    <li>Designate ONE point of contact — consolidated feedback only, no conflicting instructions.</li>
    <li>Provide written feedback within 5 business days of each submission.</li>
    <li>NOT share, post, or use any draft or work-in-progress designs publicly before final approval.</li>
    <li>Ensure all content provided to the studio is owned or properly licensed by the Client.</li>
  </ul>
  {{if .Merch}}
  <ul>
    <li>Specify the intended print method (screen print, DTF, embroidery) upfront — this affects file preparation.</li>
    <li>Verify all design details (spelling, measurements, color codes) before written approval.</li>
    <li>NOT send the studio's files to manufacturers without paying the full balance first.</li>
  </ul>
  {{end}}

  <h2>8. Intellectual Property &amp; Ownership</h2>
  <p>
    <span class="badge {{if .PortfolioRights}}badge-yes{{else}}badge-no{{end}}">Portfolio Rights</span>
    <span class="badge {{if .SourceFilesIncluded}}badge-yes{{else}}badge-no{{end}}">Source Files Included</span>
    <span class="badge {{if .Exclusivity}}badge-yes{{else}}badge-no{{end}}">Exclusive License</span>
  </p>
  <p><strong>Ownership Before Full Payment:</strong> All designs remain the studio's exclusive intellectual property until full payment is confirmed. The Client has NO right to use, publish, or distribute any design — including drafts — until the final invoice is paid in full.</p>
  <p><strong>License Upon Full Payment:</strong> {{.LicenseType}} license is granted to the Client upon receipt of full payment, for the Client's brand/business use only.</p>
  {{if not .SourceFilesIncluded}}<p><strong>Source Files:</strong> Native/source files (.AI, .PSD, etc.) are NOT included in standard delivery{{if .HasSourceFilesFee}}. They may be purchased separately at {{.Currency}} {{.SourceFilesFee}}{{end}}.</p>{{end}}

  {{if .Merch}}
  <h2>9. Production &amp; Printing Disclaimer</h2>
  <p>The studio provides design files only and is NOT responsible for:</p>
  <ul>
    <li>Print quality, color variations, or results caused by third-party printers or manufacturers.</li>
    <li>Compatibility issues if the Client changes the print method after files are delivered.</li>
    <li>Sizing, fit, or construction of physical garments.</li>
    <li>Errors on printed/produced garments from Client's failure to proofread before production.</li>
  </ul>
  <div class="warn-box">It is the Client's responsibility to verify all file specifications with their manufacturer BEFORE sending to production. A test print or sample is strongly recommended before full production runs.</div>
  {{end}}

  <h2>{{.SectionTermination}}. Termination</h2>
  <ul>
    <li>Either party may terminate with written notice (WhatsApp or email).</li>
    <li>Client pays for all work completed to date, plus the applicable kill fee (Section 6).</li>
    <li>Final files are released only after all outstanding payments are received.</li>
    <li>The studio may terminate immediately if the Client is abusive, non-communicative for 14+ days, or requests illegal/unethical content.</li>
  </ul>

  <h2>{{.SectionWarranties}}. Warranties &amp; Limitation of Liability</h2>
  <ul>
    <li>The studio warrants all designs will be original and not knowingly infringe third-party rights.</li>
    <li>The studio makes NO guarantee of specific business outcomes from any design.</li>
    <li>Client warrants all provided content does not infringe third-party rights — Client bears full legal responsibility for their own materials.</li>
    <li>The studio's maximum liability under this Agreement shall not exceed the total fees paid for this project.</li>
  </ul>

  <h2>{{.SectionDisputes}}. Dispute Resolution &amp; Governing Law</h2>
  <p>In the event of a dispute, both parties agree to attempt resolution through direct good-faith communication first. If unresolved within 14 days, the matter may be escalated to mediation. This Agreement is governed by the laws of <strong>Ghana</strong>.</p>

  <h2>{{.SectionGeneral}}. General Provisions</h2>
  <ul>
    <li>This Agreement is the complete understanding between both parties, replacing all prior verbal or written discussions.</li>
    <li>All changes to scope, price, or timeline must be agreed in writing by both parties.</li>
    <li>The studio operates as an independent creative studio — not an employee of the Client.</li>
    <li>If any clause is found unenforceable, all other clauses remain in full effect.</li>
  </ul>

  <h2>Signatures &amp; Agreement</h2>
  <p>By signing below, both parties confirm they have fully read, understood, and agreed to all terms of this Agreement.</p>
  <div class="sig-grid">
    <div>
      <div class="pay-label">The Designer</div>
      <div class="sig-line"></div>
      <div class="sig-label">Signature — {{.DesignerName}}</div>
      <div class="sig-line"></div>
      <div class="sig-label">Date</div>
    </div>
    <div>
      <div class="pay-label">The Client</div>
      <div class="sig-line"></div>
      <div class="sig-label">Signature — {{.ClientName}}</div>
      <div class="sig-line"></div>
      <div class="sig-label">Date</div>
    </div>
  </div>

  <div class="footer">Contract #{{.Number}} — {{.DesignerName}} — {{.DesignerEmail}}</div>
</div>
</body>
</html>`
