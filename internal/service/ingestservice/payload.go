package ingestservice

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// orderSchema only pins down what ingestion cannot do without. Everything
// else in the payload is optional and read leniently.
const orderSchema = `{
  "type": "object",
  "required": ["id"],
  "properties": {
    "id": {"type": ["string", "number"]},
    "line_items": {"type": "array"}
  }
}`

// flexString accepts a JSON string or number. Any other kind decodes to empty.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}
	*f = ""
	return nil
}

func (f flexString) String() string { return string(f) }

func (f flexString) Float() float64 {
	v, err := strconv.ParseFloat(string(f), 64)
	if err != nil {
		return 0
	}
	return v
}

type address struct {
	Name      flexString `json:"name"`
	FirstName flexString `json:"first_name"`
	LastName  flexString `json:"last_name"`
	Phone     flexString `json:"phone"`
	City      flexString `json:"city"`
	Province  flexString `json:"province"`
}

func (a *address) fullName() string {
	if a == nil {
		return ""
	}
	if a.Name != "" {
		return a.Name.String()
	}
	return joinName(a.FirstName, a.LastName)
}

type customer struct {
	FirstName      flexString `json:"first_name"`
	LastName       flexString `json:"last_name"`
	Phone          flexString `json:"phone"`
	DefaultAddress *address   `json:"default_address"`
}

type lineItem struct {
	ProductID flexString  `json:"product_id"`
	Quantity  *flexString `json:"quantity"`
}

type orderPayload struct {
	ID                flexString `json:"id"`
	OrderNumber       flexString `json:"order_number"`
	Name              flexString `json:"name"`
	CreatedAt         flexString `json:"created_at"`
	FinancialStatus   flexString `json:"financial_status"`
	FulfillmentStatus flexString `json:"fulfillment_status"`
	TotalPrice        flexString `json:"total_price"`
	SourceName        flexString `json:"source_name"`
	LineItems         []lineItem `json:"line_items"`
	ShippingAddress   *address   `json:"shipping_address"`
	BillingAddress    *address   `json:"billing_address"`
	Customer          *customer  `json:"customer"`
}

// buyer carries the contact fields after the shipping, billing, customer
// fallback. Empty strings mean the field was absent everywhere.
type buyer struct {
	Name   string
	Phone  string
	City   string
	Region string
}

func (p *orderPayload) buyer() buyer {
	var b buyer
	ship, bill := p.ShippingAddress, p.BillingAddress
	var cust customer
	if p.Customer != nil {
		cust = *p.Customer
	}
	custAddr := cust.DefaultAddress

	b.Name = firstNonEmpty(ship.fullName(), bill.fullName(), joinName(cust.FirstName, cust.LastName))
	b.Phone = firstNonEmpty(field(ship, phoneOf), field(bill, phoneOf), cust.Phone.String())
	b.City = firstNonEmpty(field(ship, cityOf), field(bill, cityOf), field(custAddr, cityOf))
	b.Region = firstNonEmpty(field(ship, provinceOf), field(bill, provinceOf), field(custAddr, provinceOf))
	return b
}

// quantity sums line item quantities. Decimal forms such as 2.0 are
// truncated. A missing or unparsable quantity counts as one, and a zero total
// is reported as one.
func (p *orderPayload) quantity() int {
	total := 0
	for _, item := range p.LineItems {
		q := 1
		if item.Quantity != nil {
			if v, err := strconv.ParseFloat(item.Quantity.String(), 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
				q = int(v)
			}
		}
		total += q
	}
	if total <= 0 {
		return 1
	}
	return total
}

func (p *orderPayload) orderNumber() string {
	return firstNonEmpty(p.OrderNumber.String(), p.Name.String(), p.ID.String())
}

func (p *orderPayload) firstProductID() string {
	if len(p.LineItems) == 0 {
		return ""
	}
	return p.LineItems[0].ProductID.String()
}

func phoneOf(a *address) flexString    { return a.Phone }
func cityOf(a *address) flexString     { return a.City }
func provinceOf(a *address) flexString { return a.Province }

func field(a *address, get func(*address) flexString) string {
	if a == nil {
		return ""
	}
	return get(a).String()
}

func joinName(first, last flexString) string {
	return strings.TrimSpace(first.String() + " " + last.String())
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
