package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bus_depot/internal/models"
	"bus_depot/internal/repository"
)

type CompanyController struct {
	companies *repository.CompanyRepository
}

func NewCompanyController(companies *repository.CompanyRepository) *CompanyController {
	return &CompanyController{companies: companies}
}

func (cc *CompanyController) List(c *gin.Context) {
	companies, err := cc.companies.List(c.Request.Context())
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, companies)
}

func (cc *CompanyController) Get(c *gin.Context) {
	id, ok := intParam(c, "id_company")
	if !ok {
		return
	}
	company, err := cc.companies.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (cc *CompanyController) Create(c *gin.Context) {
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := cc.companies.Create(c.Request.Context(), &company); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, company)
}

func (cc *CompanyController) Update(c *gin.Context) {
	id, ok := intParam(c, "id_company")
	if !ok {
		return
	}
	var company models.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := cc.companies.Update(c.Request.Context(), id, &company); err != nil {
		respondRepoError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (cc *CompanyController) Delete(c *gin.Context) {
	id, ok := intParam(c, "id_company")
	if !ok {
		return
	}
	if err := cc.companies.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
