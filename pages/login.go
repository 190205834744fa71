package pages

type loginPage struct {
	*basePage
}

func (p *loginPage) CustomerLogin(name string) error {
	if err := p.click(customerLoginButton); err != nil {
		return err
	}
	if err := p.waitVisible(userSelect); err != nil {
		return err
	}
	if err := p.selectLabel(userSelect, name); err != nil {
		return err
	}
	if err := p.click(loginButton); err != nil {
		return err
	}
	return p.waitVisible(welcomeMessage)
}

func (p *loginPage) ManagerLogin() error {
	if err := p.waitVisible(managerLoginButton); err != nil {
		return err
	}
	if err := p.click(managerLoginButton); err != nil {
		return err
	}
	return p.waitVisible(addCustomerTab)
}

// IsAtCustomerSelection reports whether the customer drop-down and its "Your Name :" label
// are both showing.
func (p *loginPage) IsAtCustomerSelection() (bool, error) {
	dropdown, err := p.visibleWithin(userSelect)
	if err != nil || !dropdown {
		return false, err
	}
	return p.isVisible(yourNameLabel)
}

func (p *loginPage) IsAtHome() (bool, error) {
	customer, err := p.visibleWithin(customerLoginButton)
	if err != nil || !customer {
		return false, err
	}
	return p.isVisible(managerLoginButton)
}
