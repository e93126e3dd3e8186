package llm

// InvoicePrompt is the fixed instruction sent with every invoice.
const InvoicePrompt = `Extract all information from this invoice and return a JSON object with the following structure:
{
  "invoiceNumber": "invoice number or ID",
  "invoiceDate": "date in YYYY-MM-DD format",
  "dueDate": "due date in YYYY-MM-DD format or null",
  "vendor": {
    "name": "vendor/company name",
    "company": "company name if different",
    "address": "street address",
    "cityStateZip": "city, state zip",
    "phone": "phone number",
    "fax": "fax number if available",
    "website": "website if available"
  },
  "customer": {
    "name": "customer/bill to name",
    "company": "company name if different",
    "address": "street address",
    "cityStateZip": "city, state zip",
    "phone": "phone number"
  },
  "shipTo": {
    "name": "ship to name if different from customer",
    "company": "company name",
    "address": "street address",
    "cityStateZip": "city, state zip",
    "phone": "phone number"
  },
  "shipping": {
    "salesPerson": "salesperson name if available",
    "poNumber": "purchase order number if available",
    "shipDate": "ship date in YYYY-MM-DD format or null",
    "shipVia": "shipping method if available",
    "fob": "FOB if available",
    "terms": "payment terms if available"
  },
  "lineItems": [
    {
      "itemNumber": "item number or SKU",
      "description": "product description",
      "quantity": number,
      "unitPrice": number,
      "lineTotal": number
    }
  ],
  "totals": {
    "subtotal": number,
    "taxRate": number (as percentage, e.g., 6.875 for 6.875%),
    "tax": number,
    "shippingHandling": number or 0,
    "other": number or 0,
    "total": number
  }
}

Return ONLY valid JSON, no additional text or markdown formatting.`
