package menu

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"mybank/internal/dto"
	"mybank/internal/models"
	"mybank/internal/money"
	"mybank/internal/services"
	"mybank/internal/validation"
)

const banner = `========= BANK MENU =========
0. Exit
1. Create Customer
2. Open Account
3. List Customer Accounts
4. Deposit
5. Withdraw
6. Transfer Between Accounts
7. View Account Balance
8. View Transaction History
9. View All Customers`

// Menu is the interactive driver over the bank service. It owns all input
// parsing and output formatting; the core never prints anything.
type Menu struct {
	bank     *services.BankService
	scanner  *bufio.Scanner
	out      io.Writer
	validate *validation.Validator
	logger   *slog.Logger
}

// New creates a menu reading from in and writing to out.
func New(bank *services.BankService, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		bank:     bank,
		scanner:  bufio.NewScanner(in),
		out:      out,
		validate: validation.NewValidator(),
		logger:   logger,
	}
}

// Run prints the banner once and loops on the option prompt until the user
// exits or input ends.
func (m *Menu) Run() {
	fmt.Fprintln(m.out, banner)
	for {
		fmt.Fprint(m.out, "\nSelect option: ")
		line, ok := m.readLine()
		if !ok {
			fmt.Fprintln(m.out)
			return
		}

		option, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || option < 0 || option > 9 {
			fmt.Fprintln(m.out, "Please choose an option between 0 and 9")
			continue
		}
		if option == 0 {
			fmt.Fprintln(m.out, "Goodbye!")
			return
		}
		m.dispatch(option)
	}
}

func (m *Menu) dispatch(option int) {
	switch option {
	case 1:
		m.handleCreateCustomer()
	case 2:
		m.handleOpenAccount()
	case 3:
		m.handleListCustomerAccounts()
	case 4:
		m.handleDeposit()
	case 5:
		m.handleWithdraw()
	case 6:
		m.handleTransfer()
	case 7:
		m.handleViewBalance()
	case 8:
		m.handleViewHistory()
	case 9:
		m.handleListCustomers()
	}
}

func (m *Menu) handleCreateCustomer() {
	req := dto.CreateCustomerRequest{
		Name:  m.prompt("Enter name: "),
		Email: m.prompt("Enter email: "),
	}
	if !m.checkInput(req) {
		return
	}

	customer, err := m.bank.CreateCustomer(req.Name, req.Email)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Customer created with ID: %s\n", customer.ID)
}

func (m *Menu) handleOpenAccount() {
	req := dto.OpenAccountRequest{
		CustomerID:  m.prompt("Enter customer ID: "),
		AccountType: m.prompt("Select account type (CHECKING, SAVINGS): "),
	}
	if !m.checkInput(req) {
		return
	}

	account, err := m.bank.OpenAccount(req.CustomerID, strings.ToLower(req.AccountType))
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Account created with number: %s\n", account.AccountNumber)
}

func (m *Menu) handleListCustomerAccounts() {
	customerID := m.prompt("Enter customer ID: ")

	accounts, err := m.bank.ListAccountsOf(customerID)
	if err != nil {
		m.printError(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(m.out, "No accounts yet")
		return
	}
	for _, account := range accounts {
		m.printAccount(account)
	}
}

func (m *Menu) handleDeposit() {
	req := dto.DepositRequest{
		AccountNumber: m.prompt("Enter account number: "),
		Amount:        m.prompt("Enter amount: "),
		Description:   m.prompt("Description (optional): "),
	}
	if !m.checkInput(req) {
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		m.printError(err)
		return
	}
	balance, err := m.bank.Deposit(req.AccountNumber, amount, req.Description)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Deposited %s. New balance: %s\n", amount, balance)
}

func (m *Menu) handleWithdraw() {
	req := dto.WithdrawRequest{
		AccountNumber: m.prompt("Enter account number: "),
		Amount:        m.prompt("Enter amount: "),
		Description:   m.prompt("Description (optional): "),
	}
	if !m.checkInput(req) {
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		m.printError(err)
		return
	}
	balance, err := m.bank.Withdraw(req.AccountNumber, amount, req.Description)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Withdrew %s. New balance: %s\n", amount, balance)
}

func (m *Menu) handleTransfer() {
	req := dto.TransferRequest{
		FromAccount: m.prompt("Enter source account number: "),
		ToAccount:   m.prompt("Enter destination account number: "),
		Amount:      m.prompt("Enter amount: "),
		Description: m.prompt("Description (optional): "),
	}
	if !m.checkInput(req) {
		return
	}

	amount, err := money.Parse(req.Amount)
	if err != nil {
		m.printError(err)
		return
	}
	fromBalance, toBalance, err := m.bank.Transfer(req.FromAccount, req.ToAccount, amount, req.Description)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Transferred %s. %s balance: %s, %s balance: %s\n",
		amount, req.FromAccount, fromBalance, req.ToAccount, toBalance)
}

func (m *Menu) handleViewBalance() {
	accountNumber := m.prompt("Enter account number: ")

	account, err := m.bank.GetAccount(accountNumber)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "Balance of %s: %s (%s)\n", account.AccountNumber, account.Balance, account.Status)
}

func (m *Menu) handleViewHistory() {
	accountNumber := m.prompt("Enter account number: ")

	transactions, err := m.bank.ViewHistory(accountNumber)
	if err != nil {
		m.printError(err)
		return
	}
	if len(transactions) == 0 {
		fmt.Fprintln(m.out, "No transactions yet")
		return
	}
	for _, tx := range transactions {
		m.printTransaction(tx)
	}
}

func (m *Menu) handleListCustomers() {
	customers := m.bank.ListCustomers()
	if len(customers) == 0 {
		fmt.Fprintln(m.out, "No customers yet")
		return
	}
	for i, customer := range customers {
		fmt.Fprintf(m.out, "%d. ", i+1)
		m.printCustomer(customer)
	}
}

// checkInput validates a request struct and prints field messages on
// failure.
func (m *Menu) checkInput(req interface{}) bool {
	err := m.validate.Validate(req)
	if err == nil {
		return true
	}
	for _, msg := range validation.Messages(err) {
		fmt.Fprintln(m.out, "Invalid input:", msg)
	}
	return false
}

func (m *Menu) prompt(label string) string {
	fmt.Fprint(m.out, label)
	line, _ := m.readLine()
	return strings.TrimSpace(line)
}

func (m *Menu) readLine() (string, bool) {
	if m.scanner.Scan() {
		return m.scanner.Text(), true
	}
	return "", false
}

func (m *Menu) printCustomer(c *models.Customer) {
	fmt.Fprintf(m.out, "%s  %s <%s>  since %s\n",
		c.ID, c.Name, c.Email, c.CreatedAt.Format("2006-01-02"))
}

func (m *Menu) printAccount(a *models.Account) {
	fmt.Fprintf(m.out, "%s  %-8s  %-6s  balance %s\n",
		a.AccountNumber, a.Type, a.Status, a.Balance)
}

func (m *Menu) printTransaction(t models.Transaction) {
	fmt.Fprintf(m.out, "%s  %s  %-12s  %10s  balance %10s  %s\n",
		t.ID, t.Timestamp.Format("2006-01-02 15:04:05"),
		t.Kind, t.Amount, t.BalanceAfter, t.Description)
}
