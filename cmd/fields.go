package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dummyforge/dummyforge/internal/schema"
)

var fieldGroups = []struct {
	name  string
	types []schema.FieldType
}{
	{"Identity", []schema.FieldType{schema.FieldFirstName, schema.FieldLastName, schema.FieldFullName}},
	{"Demographic", []schema.FieldType{schema.FieldGender, schema.FieldAge, schema.FieldDateOfBirth}},
	{"Contact", []schema.FieldType{schema.FieldEmail, schema.FieldPhone, schema.FieldMobilePhone, schema.FieldLandline}},
	{"Geographic", []schema.FieldType{schema.FieldCountry, schema.FieldCity, schema.FieldState, schema.FieldAddress, schema.FieldStreetAddress, schema.FieldPostalCode, schema.FieldLatitude, schema.FieldLongitude}},
	{"Identifiers", []schema.FieldType{schema.FieldStudentID, schema.FieldEmployeeID, schema.FieldUUID, schema.FieldUsername}},
	{"Temporal", []schema.FieldType{schema.FieldCreatedAt, schema.FieldUpdatedAt, schema.FieldRegistration, schema.FieldUnixTimestamp, schema.FieldISODate}},
	{"Financial", []schema.FieldType{schema.FieldCreditCard, schema.FieldIBAN, schema.FieldCurrency}},
	{"Custom", []schema.FieldType{schema.FieldRandomString, schema.FieldRandomNumeric, schema.FieldRandomAlnum, schema.FieldAutoIncrement, schema.FieldAutoIncCustom, schema.FieldBoolean, schema.FieldCustomPattern}},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List supported field types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, group := range fieldGroups {
			color.Cyan("%s:", group.name)
			for _, t := range group.types {
				fmt.Printf("  %s\n", t)
			}
			fmt.Println()
		}
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}
