package contact

// Request categories accepted in the natureOfRequest field.
const (
	CategoryFinance       = "Finance Request"
	CategoryLocker        = "Locker Request"
	CategoryWebsite       = "Website Request"
	CategoryMerchandise   = "Merchandise Request"
	CategoryScienceLounge = "Science Lounge Booking"
	CategoryEvents        = "Events Request"
	CategoryAcademics     = "Academics Request"
	CategoryEquity        = "Equity Request"
	CategoryGeneral       = "General Inquiry"
)

var categories = []string{
	CategoryFinance,
	CategoryLocker,
	CategoryWebsite,
	CategoryMerchandise,
	CategoryScienceLounge,
	CategoryEvents,
	CategoryAcademics,
	CategoryEquity,
	CategoryGeneral,
}

// Directory maps a category to its recipient address.
type Directory map[string]string

// NewDirectory builds the routing table from r. It holds no state of its own
// and is cheap enough to rebuild for every request.
func NewDirectory(r Recipients) Directory {
	return Directory{
		CategoryFinance:       r.VPFinance,
		CategoryLocker:        r.VPOperations,
		CategoryWebsite:       r.TechCommittee,
		CategoryMerchandise:   r.VPCommunications,
		CategoryScienceLounge: r.VPOperations,
		CategoryEvents:        r.VPStudentLife,
		CategoryAcademics:     r.VPAcademics,
		CategoryEquity:        r.VPEquity,
		CategoryGeneral:       r.VPOperations,
	}
}

// Lookup returns the address for category. The boolean is false for
// categories outside the closed set; the address is then empty.
func (d Directory) Lookup(category string) (string, bool) {
	addr, ok := d[category]
	return addr, ok
}

// Unconfigured lists categories whose address is empty, in declaration order.
func (d Directory) Unconfigured() []string {
	var missing []string
	for _, c := range categories {
		if d[c] == "" {
			missing = append(missing, c)
		}
	}
	return missing
}

// Categories returns the closed set of categories in declaration order.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}
