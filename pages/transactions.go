package pages

import (
	"fmt"
	"strconv"
	"strings"
)

type transactionsPage struct {
	*basePage
}

func (p *transactionsPage) SortByDate() error {
	return p.click(sortByDateLink)
}

func (p *transactionsPage) Count() (int, error) {
	n, err := p.locator(transactionRows).Count()
	return n, actionError("count rows", transactionRows, err)
}

func (p *transactionsPage) Rows() ([]Transaction, error) {
	count, err := p.Count()
	if err != nil {
		return nil, err
	}
	rows := make([]Transaction, 0, count)
	for i := 0; i < count; i++ {
		cells, err := p.locator(transactionRows).Nth(i).Locator("td").AllTextContents()
		if err != nil {
			return nil, actionError("read row", transactionRows, err)
		}
		row, err := parseTransactionRow(cells)
		if err != nil {
			return nil, actionError("read row", transactionRows, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (p *transactionsPage) Amounts() ([]int, error) {
	texts, err := p.allTexts(transactionAmounts)
	if err != nil {
		return nil, err
	}
	amounts := make([]int, 0, len(texts))
	for _, t := range texts {
		n, err := strconv.Atoi(t)
		if err != nil {
			return nil, actionError("read amounts", transactionAmounts, fmt.Errorf("%q is not a number", t))
		}
		amounts = append(amounts, n)
	}
	return amounts, nil
}

func (p *transactionsPage) Back() error {
	return p.click(transactionsBackBtn)
}

func parseTransactionRow(cells []string) (Transaction, error) {
	if len(cells) < 3 {
		return Transaction{}, fmt.Errorf("expected 3 cells, got %d", len(cells))
	}
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	amount, err := strconv.Atoi(cells[1])
	if err != nil {
		return Transaction{}, fmt.Errorf("%q is not a number", cells[1])
	}
	return Transaction{DateTime: cells[0], Amount: amount, Type: cells[2]}, nil
}
