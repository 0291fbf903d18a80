package main

import (
	"fmt"
	"net/http"

	"github.com/leavedesk/leavedesk-backend-go/internal/config"
	appHTTP "github.com/leavedesk/leavedesk-backend-go/internal/handler/http"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/database"
	"github.com/leavedesk/leavedesk-backend-go/internal/pkg/jwt"
	"github.com/leavedesk/leavedesk-backend-go/internal/repository/postgresql"
	authService "github.com/leavedesk/leavedesk-backend-go/internal/service/auth"
	employeeService "github.com/leavedesk/leavedesk-backend-go/internal/service/employee"
	leaveService "github.com/leavedesk/leavedesk-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	accountRepo := postgresql.NewAccountRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(accountRepo, jwtService, cfg.Leave.AnnualLimit)
	employeeSvc := employeeService.NewEmployeeService(accountRepo, cfg.Leave.AnnualLimit)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, accountRepo, txManager, cfg.Leave.AnnualLimit)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(jwtService, db, authHandler, employeeHandler, leaveHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
