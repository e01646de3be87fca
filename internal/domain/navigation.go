package domain

// Page — страница витрины.
type Page string

const (
	PageDashboard     Page = "dashboard"
	PageProductDetail Page = "product-detail"
	PageCart          Page = "cart"
	PageOrderHistory  Page = "order-history"
	PageSearchResults Page = "search-results"
)

// ValidPage проверяет, что значение входит в фиксированный набор страниц.
func ValidPage(p Page) bool {
	switch p {
	case PageDashboard, PageProductDetail, PageCart, PageOrderHistory, PageSearchResults:
		return true
	default:
		return false
	}
}

// NavigationState — текущее состояние навигации витрины.
type NavigationState struct {
	Page         Page
	Selected     *Product
	InTransition bool
}
