package partition

// Departments maps the three-character register-number code (characters
// 3-5 of the register number) to the department name. Fixed in-source
// data; codes outside this table exclude the row from every output.
var Departments = map[string]string{
	"28M": "Data Science",
	"25F": "BBA",
	"25N": "BBAIB",
	"2AA": "BCom",
	"2AK": "BComPA",
	"26U": "Psychology",
	"22S": "Viscom",
	"21C": "Economics",
	"21G": "Tamil",
	"31B": "MSW",
	"21B": "Political Science",
	"31M": "M. Political Science",
}
