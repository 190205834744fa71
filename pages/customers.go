package pages

import "strings"

type customerListPage struct {
	*basePage
}

func (p *customerListPage) open() error {
	if err := p.click(customersTab); err != nil {
		return err
	}
	return p.waitVisible(customersTable)
}

func (p *customerListPage) Search(term string) error {
	if err := p.waitVisible(searchCustomerInput); err != nil {
		return err
	}
	return p.fill(searchCustomerInput, term)
}

// findCustomerRow filters the list by first name and returns the index of the first row
// that also contains the last name, or -1.
func (p *customerListPage) findCustomerRow(fullName string) (int, error) {
	if err := p.open(); err != nil {
		return -1, err
	}
	first, last := SplitName(fullName)
	if err := p.Search(first); err != nil {
		return -1, err
	}
	rows, err := p.allTexts(customerRows)
	if err != nil {
		return -1, err
	}
	for i, row := range rows {
		if RowMatchesName(row, first, last) {
			return i, nil
		}
	}
	return -1, nil
}

func (p *customerListPage) IsCustomerListed(fullName string) (bool, error) {
	index, err := p.findCustomerRow(fullName)
	return index >= 0, err
}

func (p *customerListPage) DeleteCustomer(fullName string) (bool, error) {
	index, err := p.findCustomerRow(fullName)
	if err != nil || index < 0 {
		return false, err
	}
	button := p.locator(customerRows).Nth(index).Locator(deleteButton)
	p.logger.Printf("Deleting customer %q (row %d)", fullName, index)
	if err := button.Click(); err != nil {
		return false, actionError("delete customer", deleteButton, err)
	}
	return true, nil
}

// RowMatchesName reports whether the text of a customer table row belongs to the named
// customer. Cells are concatenated without separators in the row text, so the names are
// matched independently.
func RowMatchesName(rowText, first, last string) bool {
	return strings.Contains(rowText, first) && (last == "" || strings.Contains(rowText, last))
}
