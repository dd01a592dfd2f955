package dto

import "testing"

func validUser() CreateUserRequest {
	return CreateUserRequest{
		FirstName:    "Alice",
		LastName:     "Johnson",
		Address:      "12 Bank Street",
		MobileNumber: "9876543210",
		EmailID:      "alice@example.com",
		Password:     "secret-pass",
		UserTypeID:   1,
	}
}

func TestValidateCreateUserRequest(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CreateUserRequest)
		wantField string
	}{
		{name: "valid", mutate: func(r *CreateUserRequest) {}, wantField: ""},
		{name: "missing_email", mutate: func(r *CreateUserRequest) { r.EmailID = "" }, wantField: "EmailID"},
		{name: "bad_email", mutate: func(r *CreateUserRequest) { r.EmailID = "not-an-email" }, wantField: "EmailID"},
		{name: "short_first_name", mutate: func(r *CreateUserRequest) { r.FirstName = "Al" }, wantField: "FirstName"},
		{name: "short_password", mutate: func(r *CreateUserRequest) { r.Password = "short" }, wantField: "Password"},
		{name: "long_password", mutate: func(r *CreateUserRequest) { r.Password = "way-too-long-password" }, wantField: "Password"},
		{name: "mobile_too_short", mutate: func(r *CreateUserRequest) { r.MobileNumber = "12345" }, wantField: "MobileNumber"},
		{name: "mobile_bad_leading_digit", mutate: func(r *CreateUserRequest) { r.MobileNumber = "1234567890" }, wantField: "MobileNumber"},
		{name: "mobile_with_letters", mutate: func(r *CreateUserRequest) { r.MobileNumber = "98765abcde" }, wantField: "MobileNumber"},
		{name: "missing_user_type", mutate: func(r *CreateUserRequest) { r.UserTypeID = 0 }, wantField: "UserTypeID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validUser()
			tt.mutate(&req)
			errs := Validate(req)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("Validate() = %v, want nil", errs)
				}
				return
			}
			if errs == nil {
				t.Fatalf("Validate() = nil, want error on %s", tt.wantField)
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("Validate() = %v, want message for %s", errs, tt.wantField)
			}
		})
	}
}

func TestValidateFundTransferRequest(t *testing.T) {
	tests := []struct {
		name      string
		req       FundTransferRequest
		wantField string
	}{
		{
			name:      "valid",
			req:       FundTransferRequest{FromAccount: "00110001", ToAccount: "00220002", TransactionAmount: 500},
			wantField: "",
		},
		{
			name:      "same_account",
			req:       FundTransferRequest{FromAccount: "00110001", ToAccount: "00110001", TransactionAmount: 500},
			wantField: "ToAccount",
		},
		{
			name:      "short_account_number",
			req:       FundTransferRequest{FromAccount: "001", ToAccount: "00220002", TransactionAmount: 500},
			wantField: "FromAccount",
		},
		{
			name:      "zero_amount",
			req:       FundTransferRequest{FromAccount: "00110001", ToAccount: "00220002", TransactionAmount: 0},
			wantField: "TransactionAmount",
		},
		{
			name:      "negative_amount",
			req:       FundTransferRequest{FromAccount: "00110001", ToAccount: "00220002", TransactionAmount: -5},
			wantField: "TransactionAmount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.req)
			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("Validate() = %v, want nil", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Fatalf("Validate() = %v, want message for %s", errs, tt.wantField)
			}
		})
	}
}

func TestValidatePartialUpdateSkipsNilFields(t *testing.T) {
	// nil pointers are untouched fields, not violations
	if errs := Validate(UpdateUserRequest{}); errs != nil {
		t.Fatalf("Validate(empty update) = %v, want nil", errs)
	}

	bad := "no"
	if errs := Validate(UpdateUserRequest{FirstName: &bad}); errs == nil {
		t.Fatalf("set fields must still be validated")
	}
}

func TestValidateCreateBankAccountRequest(t *testing.T) {
	valid := CreateBankAccountRequest{AccountBalance: 5000, UserID: 1, BranchID: 1, AccountTypeID: 1}
	if errs := Validate(valid); errs != nil {
		t.Fatalf("Validate() = %v, want nil", errs)
	}

	wide := valid
	wide.BranchID = 1000
	errs := Validate(wide)
	if _, ok := errs["BranchID"]; !ok {
		t.Fatalf("Validate() = %v, want message for BranchID over 999", errs)
	}
}

func TestValidatePostTransactionRequest(t *testing.T) {
	valid := PostTransactionRequest{TransactionAmount: 100, BankAccountID: 1, TransactionTypeID: 2}
	if errs := Validate(valid); errs != nil {
		t.Fatalf("Validate() = %v, want nil", errs)
	}

	missing := PostTransactionRequest{TransactionAmount: 100}
	errs := Validate(missing)
	if errs == nil {
		t.Fatalf("missing ids must fail validation")
	}
	if _, ok := errs["BankAccountID"]; !ok {
		t.Fatalf("Validate() = %v, want message for BankAccountID", errs)
	}
}
