package order

import "strings"

// SearchLimit caps the number of orders returned by a search.
const SearchLimit = 1000

// Search filters orders by status and by a substring of the member name.
// Both criteria are optional; an absent criterion matches every order.
type Search struct {
	status     *Status
	memberName string
}

// NewSearch builds a filter. A nil status or a blank member name means that
// criterion is absent.
func NewSearch(status *Status, memberName string) (Search, error) {
	var search Search
	if status != nil {
		if err := status.Validate(); err != nil {
			return Search{}, err
		}
		s := *status
		search.status = &s
	}
	if strings.TrimSpace(memberName) != "" {
		search.memberName = memberName
	}
	return search, nil
}

func (s Search) Status() (Status, bool) {
	if s.status == nil {
		return Unknown, false
	}
	return *s.status, true
}

// MemberName is matched case-sensitively as a substring of the member's name.
func (s Search) MemberName() (string, bool) {
	return s.memberName, s.memberName != ""
}

func (s Search) Limit() int {
	return SearchLimit
}
