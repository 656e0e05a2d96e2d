package ui

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02 15:04")
	},
	"formatDate": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("2006-01-02")
	},
	"formatClock": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("15:04")
	},
	"statusColor": func(status string) string {
		switch strings.ToLower(status) {
		case "scheduled":
			return "bg-yellow-100 text-yellow-800"
		case "confirmed":
			return "bg-blue-100 text-blue-800"
		case "in_progress":
			return "bg-indigo-100 text-indigo-800"
		case "completed":
			return "bg-green-100 text-green-800"
		case "cancelled", "no_show":
			return "bg-gray-100 text-gray-600"
		default:
			return "bg-gray-100 text-gray-600"
		}
	},
	"statusLabel": func(status string) string {
		return strings.ReplaceAll(strings.ToLower(status), "_", " ")
	},
	"num": func(v *int) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *v)
	},
	"dec": func(v *float64) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%.1f", *v)
	},
	"toJSON": func(v any) template.JS {
		b, err := json.Marshal(v)
		if err != nil {
			return template.JS("null")
		}
		return template.JS(b)
	},
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
	"urlquery": func(s string) string {
		return template.URLQueryEscaper(s)
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	if _, err = tmpl.New("content").Parse(content); err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
</head>
<body class="bg-gray-50 min-h-screen">
    {{if .User}}
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-7xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex justify-between h-16">
                <div class="flex">
                    <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-teal-600">
                        Vita
                    </a>
                    <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                        <a href="/" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                            Dashboard
                        </a>
                        <a href="/patients" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                            Patients
                        </a>
                        <a href="/appointments" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                            Appointments
                        </a>
                        <a href="/alerts" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                            Alerts
                        </a>
                    </div>
                </div>
                <div class="flex items-center">
                    <span class="flex items-center justify-center h-8 w-8 rounded-full bg-teal-600 text-white text-sm font-medium mr-2">{{.User.Initials}}</span>
                    <span class="text-sm text-gray-500 mr-4">{{.User.FullName}}</span>
                    <a href="/logout" class="text-sm text-gray-500 hover:text-gray-700">Logout</a>
                </div>
            </div>
        </div>
    </nav>
    {{end}}

    <main class="max-w-7xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"login": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center bg-gray-50 py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">Vita</h2>
            <p class="mt-2 text-center text-sm text-gray-600">Sign in to your account</p>
        </div>
        {{if .Registered}}
        <div class="rounded-md bg-green-50 p-4">
            <div class="text-sm text-green-700">Account created. Sign in to continue.</div>
        </div>
        {{end}}
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        <form class="mt-8 space-y-6" action="/login" method="POST">
            <input type="hidden" name="return_to" value="{{.ReturnTo}}">
            <div class="rounded-md shadow-sm -space-y-px">
                <div>
                    <label for="email" class="sr-only">Email</label>
                    <input id="email" name="email" type="email" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-t-md focus:outline-none focus:ring-teal-500 focus:border-teal-500 sm:text-sm"
                           placeholder="Email">
                </div>
                <div>
                    <label for="password" class="sr-only">Password</label>
                    <input id="password" name="password" type="password" required
                           class="appearance-none rounded-none relative block w-full px-3 py-2 border border-gray-300 placeholder-gray-500 text-gray-900 rounded-b-md focus:outline-none focus:ring-teal-500 focus:border-teal-500 sm:text-sm"
                           placeholder="Password">
                </div>
            </div>
            <div>
                <button type="submit"
                        class="group relative w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700 focus:outline-none focus:ring-2 focus:ring-offset-2 focus:ring-teal-500">
                    Sign in
                </button>
            </div>
            <p class="text-center text-sm text-gray-600">
                No account? <a href="/register" class="text-teal-600 hover:text-teal-700">Register</a>
            </p>
        </form>
    </div>
</div>
{{end}}`,

	"register": `{{define "content"}}
<div class="min-h-screen flex items-center justify-center bg-gray-50 py-12 px-4 sm:px-6 lg:px-8">
    <div class="max-w-md w-full space-y-8">
        <div>
            <h2 class="mt-6 text-center text-3xl font-extrabold text-gray-900">Create your account</h2>
        </div>
        {{if .Error}}
        <div class="rounded-md bg-red-50 p-4">
            <div class="text-sm text-red-700">{{.Error}}</div>
        </div>
        {{end}}
        <form class="mt-8 space-y-4" action="/register" method="POST">
            <input name="full_name" type="text" required placeholder="Full name"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-teal-500 focus:border-teal-500">
            <input name="email" type="email" required placeholder="Email"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-teal-500 focus:border-teal-500">
            <input name="password" type="password" required placeholder="Password"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-teal-500 focus:border-teal-500">
            <div class="grid grid-cols-2 gap-4">
                <input name="crm" type="text" placeholder="CRM"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-teal-500 focus:border-teal-500">
                <input name="specialty" type="text" placeholder="Specialty"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-teal-500 focus:border-teal-500">
            </div>
            <select name="role" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <option value="doctor">Doctor</option>
                <option value="nurse">Nurse</option>
            </select>
            <button type="submit"
                    class="w-full flex justify-center py-2 px-4 border border-transparent text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">
                Register
            </button>
            <p class="text-center text-sm text-gray-600">
                Already registered? <a href="/login" class="text-teal-600 hover:text-teal-700">Sign in</a>
            </p>
        </form>
    </div>
</div>
{{end}}`,

	"dashboard": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-8">
        <h1 class="text-2xl font-semibold text-gray-900">Dashboard</h1>
        <p class="mt-1 text-sm text-gray-500">Welcome back, {{.User.FullName}}</p>
    </div>

    <div class="grid grid-cols-1 gap-5 sm:grid-cols-2 lg:grid-cols-4 mb-8">
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Patients</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.Stats.TotalPatients}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Appointments today</dt>
            <dd class="text-lg font-semibold text-blue-600">{{.Stats.AppointmentsToday}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">This week</dt>
            <dd class="text-lg font-semibold text-gray-900">{{.Stats.AppointmentsThisWeek}}</dd>
        </div>
        <div class="bg-white overflow-hidden shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500 truncate">Patients with alerts</dt>
            <dd class="text-lg font-semibold text-red-600">{{.Stats.PatientsWithAlerts}}</dd>
        </div>
    </div>

    <div class="grid grid-cols-1 lg:grid-cols-2 gap-6">
        <div class="bg-white shadow rounded-lg">
            <div class="px-5 py-4 border-b"><h2 class="text-lg font-medium text-gray-900">Today</h2></div>
            <ul class="divide-y divide-gray-200">
                {{range .Today}}
                <li class="px-5 py-3 flex justify-between items-center">
                    <div>
                        <a href="/appointments/{{.ID}}" class="text-sm font-medium text-teal-600 hover:text-teal-700">{{.Patient.FullName}}</a>
                        <p class="text-sm text-gray-500">{{.Reason}}</p>
                    </div>
                    <div class="text-right">
                        <span class="text-sm text-gray-900">{{formatClock .ScheduledAt}}</span>
                        <span class="ml-2 inline-flex px-2 text-xs font-semibold rounded-full {{statusColor (printf "%s" .Status)}}">{{statusLabel (printf "%s" .Status)}}</span>
                    </div>
                </li>
                {{else}}
                <li class="px-5 py-6 text-sm text-gray-500">No appointments today</li>
                {{end}}
            </ul>
        </div>
        <div class="bg-white shadow rounded-lg">
            <div class="px-5 py-4 border-b"><h2 class="text-lg font-medium text-gray-900">Upcoming</h2></div>
            <ul class="divide-y divide-gray-200">
                {{range .Upcoming}}
                <li class="px-5 py-3 flex justify-between items-center">
                    <a href="/appointments/{{.ID}}" class="text-sm font-medium text-teal-600 hover:text-teal-700">{{.Patient.FullName}}</a>
                    <span class="text-sm text-gray-500">{{formatTime .ScheduledAt}}</span>
                </li>
                {{else}}
                <li class="px-5 py-6 text-sm text-gray-500">Nothing scheduled</li>
                {{end}}
            </ul>
        </div>
    </div>
</div>
{{end}}`,

	"patients/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Patients</h1>
        <a href="/patients/new" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">New Patient</a>
    </div>

    <form method="GET" action="/patients" class="mb-4 flex gap-2">
        <input name="search" type="text" value="{{.Search}}" placeholder="Search by name or CPF"
               class="block w-64 px-3 py-2 border border-gray-300 rounded-md text-sm focus:ring-teal-500 focus:border-teal-500">
        <button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Search</button>
    </form>

    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Name</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">CPF</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Phone</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                    <th class="px-6 py-3"></th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200">
                {{range .Patients}}
                <tr>
                    <td class="px-6 py-4 text-sm font-medium"><a href="/patients/{{.ID}}" class="text-teal-600 hover:text-teal-700">{{.FullName}}</a></td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.CPF}}</td>
                    <td class="px-6 py-4 text-sm text-gray-500">{{.Phone}}</td>
                    <td class="px-6 py-4 text-sm">
                        {{if .IsActive}}<span class="inline-flex px-2 text-xs font-semibold rounded-full bg-green-100 text-green-800">active</span>
                        {{else}}<span class="inline-flex px-2 text-xs font-semibold rounded-full bg-gray-100 text-gray-600">inactive</span>{{end}}
                    </td>
                    <td class="px-6 py-4 text-sm text-right"><a href="/patients/{{.ID}}/vitals" class="text-gray-500 hover:text-gray-700">Vitals</a></td>
                </tr>
                {{else}}
                <tr><td colspan="5" class="px-6 py-8 text-center text-sm text-gray-500">No patients found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{with .Pagination}}
    <div class="mt-4 flex justify-between items-center text-sm text-gray-500">
        <span>{{.Total}} patients</span>
        <div class="space-x-2">
            {{if .HasPrev}}<a href="?page={{.PrevPage}}&search={{urlquery $.Search}}" class="px-3 py-1 border rounded-md bg-white hover:bg-gray-50">Previous</a>{{end}}
            {{if .HasMore}}<a href="?page={{.NextPage}}&search={{urlquery $.Search}}" class="px-3 py-1 border rounded-md bg-white hover:bg-gray-50">Next</a>{{end}}
        </div>
    </div>
    {{end}}
</div>
{{end}}`,

	"patients/detail": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <div>
            <h1 class="text-2xl font-semibold text-gray-900">{{.Patient.FullName}}</h1>
            <p class="mt-1 text-sm text-gray-500">{{.Patient.CPF}} &middot; born {{.Patient.BirthDate}}</p>
        </div>
        <div class="space-x-2">
            <a href="/patients/{{.Patient.ID}}/vitals" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Vitals</a>
            <a href="/patients/{{.Patient.ID}}/edit" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Edit</a>
            <a href="/appointments/new?patient_id={{.Patient.ID}}" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Schedule</a>
        </div>
    </div>

    <div class="grid grid-cols-1 lg:grid-cols-3 gap-6">
        <div class="bg-white shadow rounded-lg p-5 lg:col-span-2">
            <h2 class="text-lg font-medium text-gray-900 mb-4">Record</h2>
            <dl class="grid grid-cols-2 gap-x-4 gap-y-3 text-sm">
                <div><dt class="text-gray-500">Phone</dt><dd>{{.Patient.Phone}}</dd></div>
                <div><dt class="text-gray-500">Email</dt><dd>{{.Patient.Email}}</dd></div>
                <div><dt class="text-gray-500">Blood type</dt><dd>{{.Patient.BloodType}}</dd></div>
                <div><dt class="text-gray-500">Gender</dt><dd>{{.Patient.Gender}}</dd></div>
                <div><dt class="text-gray-500">Allergies</dt><dd>{{.Patient.Allergies}}</dd></div>
                <div><dt class="text-gray-500">Emergency contact</dt><dd>{{.Patient.EmergencyContact}} {{.Patient.EmergencyPhone}}</dd></div>
                <div class="col-span-2"><dt class="text-gray-500">Notes</dt><dd>{{.Patient.MedicalNotes}}</dd></div>
            </dl>
        </div>
        <div class="space-y-6">
            {{with .Patient.LatestVitals}}
            <div class="bg-white shadow rounded-lg p-5">
                <h2 class="text-lg font-medium text-gray-900 mb-4">Latest vitals</h2>
                <dl class="grid grid-cols-2 gap-x-4 gap-y-3 text-sm">
                    <div><dt class="text-gray-500">Heart rate</dt><dd>{{num .HeartRate}} bpm</dd></div>
                    <div><dt class="text-gray-500">Pressure</dt><dd>{{num .SystolicPressure}}/{{num .DiastolicPressure}}</dd></div>
                    <div><dt class="text-gray-500">Temperature</dt><dd>{{dec .Temperature}} &deg;C</dd></div>
                    <div><dt class="text-gray-500">SpO2</dt><dd>{{dec .OxygenSaturation}}%</dd></div>
                </dl>
                <p class="mt-3 text-xs text-gray-400">Recorded {{formatTime .RecordedAt}}</p>
            </div>
            {{end}}
            <div class="bg-white shadow rounded-lg">
                <div class="px-5 py-4 border-b"><h2 class="text-lg font-medium text-gray-900">Upcoming</h2></div>
                <ul class="divide-y divide-gray-200">
                    {{range .Patient.UpcomingAppointments}}
                    <li class="px-5 py-3 flex justify-between text-sm">
                        <a href="/appointments/{{.ID}}" class="text-teal-600 hover:text-teal-700">{{formatTime .ScheduledAt}}</a>
                        <span class="inline-flex px-2 text-xs font-semibold rounded-full {{statusColor (printf "%s" .Status)}}">{{statusLabel (printf "%s" .Status)}}</span>
                    </li>
                    {{else}}
                    <li class="px-5 py-6 text-sm text-gray-500">No upcoming appointments</li>
                    {{end}}
                </ul>
            </div>
            <form method="POST" action="/patients/{{.Patient.ID}}/deactivate"
                  onsubmit="return confirm('Deactivate this patient?')">
                <button type="submit" class="w-full px-4 py-2 text-sm font-medium rounded-md text-red-700 bg-red-50 hover:bg-red-100">Deactivate patient</button>
            </form>
        </div>
    </div>
</div>
{{end}}`,

	"patients/create": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-3xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">New Patient</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <form method="POST" action="/patients/new" class="bg-white shadow rounded-lg p-6 space-y-4">
        <div class="grid grid-cols-2 gap-4">
            <input name="full_name" type="text" required placeholder="Full name"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="cpf" type="text" required placeholder="CPF"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="birth_date" type="date" required
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <select name="gender" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <option value="female">Female</option>
                <option value="male">Male</option>
                <option value="other">Other</option>
            </select>
            <input name="phone" type="tel" placeholder="Phone"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="email" type="email" placeholder="Email"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="blood_type" type="text" placeholder="Blood type"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="allergies" type="text" placeholder="Allergies"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="emergency_contact" type="text" placeholder="Emergency contact"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="emergency_phone" type="tel" placeholder="Emergency phone"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <input name="address" type="text" placeholder="Address"
               class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        <textarea name="medical_notes" rows="3" placeholder="Medical notes"
                  class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm"></textarea>
        <div class="flex justify-end gap-2">
            <a href="/patients" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Cancel</a>
            <button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Create</button>
        </div>
    </form>
</div>
{{end}}`,

	"patients/edit": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-3xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Edit {{.Patient.FullName}}</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <form method="POST" action="/patients/{{.Patient.ID}}/edit" class="bg-white shadow rounded-lg p-6 space-y-4">
        <div class="grid grid-cols-2 gap-4">
            <input name="full_name" type="text" value="{{.Patient.FullName}}" placeholder="Full name"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="phone" type="tel" value="{{.Patient.Phone}}" placeholder="Phone"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="email" type="email" value="{{.Patient.Email}}" placeholder="Email"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="allergies" type="text" value="{{.Patient.Allergies}}" placeholder="Allergies"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="emergency_contact" type="text" value="{{.Patient.EmergencyContact}}" placeholder="Emergency contact"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="emergency_phone" type="tel" value="{{.Patient.EmergencyPhone}}" placeholder="Emergency phone"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <input name="address" type="text" value="{{.Patient.Address}}" placeholder="Address"
               class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        <textarea name="medical_notes" rows="3" placeholder="Medical notes"
                  class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">{{.Patient.MedicalNotes}}</textarea>
        <div class="flex justify-end gap-2">
            <a href="/patients/{{.Patient.ID}}" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Cancel</a>
            <button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Save</button>
        </div>
    </form>
</div>
{{end}}`,

	"patients/vitals": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <div>
            <h1 class="text-2xl font-semibold text-gray-900">Vitals: {{.Patient.FullName}}</h1>
            <p class="mt-1 text-sm text-gray-500">Last {{.Days}} days</p>
        </div>
        <a href="/patients/{{.Patient.ID}}" class="text-sm text-teal-600 hover:text-teal-700">Back to patient</a>
    </div>

    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}

    {{with .Stats}}
    <div class="grid grid-cols-2 lg:grid-cols-4 gap-5 mb-6">
        <div class="bg-white shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500">Avg heart rate</dt>
            <dd class="text-lg font-semibold">{{dec .AvgHeartRate}} bpm</dd>
        </div>
        <div class="bg-white shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500">Avg pressure</dt>
            <dd class="text-lg font-semibold">{{dec .AvgSystolic}}/{{dec .AvgDiastolic}}</dd>
        </div>
        <div class="bg-white shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500">Avg temperature</dt>
            <dd class="text-lg font-semibold">{{dec .AvgTemperature}} &deg;C</dd>
        </div>
        <div class="bg-white shadow rounded-lg p-5">
            <dt class="text-sm font-medium text-gray-500">Records</dt>
            <dd class="text-lg font-semibold">{{.TotalRecords}}</dd>
        </div>
    </div>
    {{end}}

    {{if .Chart}}
    <div class="bg-white shadow rounded-lg p-5 mb-6">
        <canvas id="vitals-chart" height="80"></canvas>
        <script>
        (function() {
            var chart = {{toJSON .Chart}};
            if (!chart || !chart.heart_rate) return;
            new Chart(document.getElementById('vitals-chart'), {
                type: 'line',
                data: {
                    labels: chart.heart_rate.map(function(p) { return p.name; }),
                    datasets: [
                        { label: 'Heart rate', data: chart.heart_rate.map(function(p) { return p.value; }), borderColor: '#0d9488' },
                        { label: 'SpO2', data: chart.oxygen_saturation.map(function(p) { return p.value; }), borderColor: '#2563eb' }
                    ]
                }
            });
        })();
        </script>
    </div>
    {{end}}

    <div class="grid grid-cols-1 lg:grid-cols-3 gap-6">
        <div class="bg-white shadow rounded-lg overflow-hidden lg:col-span-2">
            <table class="min-w-full divide-y divide-gray-200">
                <thead class="bg-gray-50">
                    <tr>
                        <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Recorded</th>
                        <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">HR</th>
                        <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">BP</th>
                        <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Temp</th>
                        <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">SpO2</th>
                        <th class="px-4 py-3 text-left text-xs font-medium text-gray-500 uppercase">Glucose</th>
                    </tr>
                </thead>
                <tbody class="divide-y divide-gray-200 text-sm">
                    {{range .Vitals}}
                    <tr>
                        <td class="px-4 py-3 text-gray-500">{{formatTime .RecordedAt}}</td>
                        <td class="px-4 py-3">{{num .HeartRate}}</td>
                        <td class="px-4 py-3">{{num .SystolicPressure}}/{{num .DiastolicPressure}}</td>
                        <td class="px-4 py-3">{{dec .Temperature}}</td>
                        <td class="px-4 py-3">{{dec .OxygenSaturation}}</td>
                        <td class="px-4 py-3">{{dec .GlucoseLevel}}</td>
                    </tr>
                    {{else}}
                    <tr><td colspan="6" class="px-4 py-8 text-center text-gray-500">No measurements recorded</td></tr>
                    {{end}}
                </tbody>
            </table>
        </div>
        <form method="POST" action="/patients/{{.Patient.ID}}/vitals" class="bg-white shadow rounded-lg p-5 space-y-3 self-start">
            <h2 class="text-lg font-medium text-gray-900">Record measurement</h2>
            <div class="grid grid-cols-2 gap-3">
                <input name="heart_rate" type="number" placeholder="Heart rate"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="respiratory_rate" type="number" placeholder="Resp. rate"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="systolic_pressure" type="number" placeholder="Systolic"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="diastolic_pressure" type="number" placeholder="Diastolic"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="temperature" type="number" step="0.1" placeholder="Temp &deg;C"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="oxygen_saturation" type="number" step="0.1" placeholder="SpO2 %"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="weight" type="number" step="0.1" placeholder="Weight kg"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
                <input name="glucose_level" type="number" step="0.1" placeholder="Glucose"
                       class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            </div>
            <textarea name="notes" rows="2" placeholder="Notes"
                      class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm"></textarea>
            <button type="submit" class="w-full px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Record</button>
        </form>
    </div>
</div>
{{end}}`,

	"appointments/list": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Appointments</h1>
        <a href="/appointments/new" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Schedule</a>
    </div>

    <form method="GET" action="/appointments" class="mb-4 flex gap-2 items-center">
        <select name="status" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
            <option value="">All statuses</option>
            <option value="scheduled" {{if eq .StatusFilter "scheduled"}}selected{{end}}>Scheduled</option>
            <option value="confirmed" {{if eq .StatusFilter "confirmed"}}selected{{end}}>Confirmed</option>
            <option value="completed" {{if eq .StatusFilter "completed"}}selected{{end}}>Completed</option>
            <option value="cancelled" {{if eq .StatusFilter "cancelled"}}selected{{end}}>Cancelled</option>
        </select>
        <input name="date_from" type="date" value="{{.DateFrom}}" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
        <input name="date_to" type="date" value="{{.DateTo}}" class="px-3 py-2 border border-gray-300 rounded-md text-sm">
        <button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Filter</button>
    </form>

    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">When</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Patient</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Type</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Status</th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200 text-sm">
                {{range .Appointments}}
                <tr>
                    <td class="px-6 py-4"><a href="/appointments/{{.ID}}" class="text-teal-600 hover:text-teal-700">{{formatTime .ScheduledAt}}</a></td>
                    <td class="px-6 py-4 text-gray-500"><a href="/patients/{{.PatientID}}" class="hover:text-gray-700">#{{.PatientID}}</a></td>
                    <td class="px-6 py-4 text-gray-500">{{.AppointmentType}}{{if .IsTelemedicine}} (tele){{end}}</td>
                    <td class="px-6 py-4"><span class="inline-flex px-2 text-xs font-semibold rounded-full {{statusColor (printf "%s" .Status)}}">{{statusLabel (printf "%s" .Status)}}</span></td>
                </tr>
                {{else}}
                <tr><td colspan="4" class="px-6 py-8 text-center text-gray-500">No appointments found</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>

    {{with .Pagination}}
    <div class="mt-4 flex justify-between items-center text-sm text-gray-500">
        <span>{{.Total}} appointments</span>
        <div class="space-x-2">
            {{if .HasPrev}}<a href="?page={{.PrevPage}}" class="px-3 py-1 border rounded-md bg-white hover:bg-gray-50">Previous</a>{{end}}
            {{if .HasMore}}<a href="?page={{.NextPage}}" class="px-3 py-1 border rounded-md bg-white hover:bg-gray-50">Next</a>{{end}}
        </div>
    </div>
    {{end}}
</div>
{{end}}`,

	"appointments/detail": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-3xl">
    <div class="flex justify-between items-center mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">{{formatTime .Appointment.ScheduledAt}}</h1>
        <span class="inline-flex px-3 py-1 text-sm font-semibold rounded-full {{statusColor (printf "%s" .Appointment.Status)}}">{{statusLabel (printf "%s" .Appointment.Status)}}</span>
    </div>

    <div class="bg-white shadow rounded-lg p-6 space-y-4">
        <dl class="grid grid-cols-2 gap-x-4 gap-y-3 text-sm">
            <div><dt class="text-gray-500">Patient</dt>
                 <dd><a href="/patients/{{.Appointment.Patient.ID}}" class="text-teal-600 hover:text-teal-700">{{.Appointment.Patient.FullName}}</a></dd></div>
            <div><dt class="text-gray-500">Doctor</dt><dd>{{.Appointment.Doctor.FullName}}</dd></div>
            <div><dt class="text-gray-500">Duration</dt><dd>{{.Appointment.DurationMinutes}} min</dd></div>
            <div><dt class="text-gray-500">Type</dt><dd>{{.Appointment.AppointmentType}}{{if .Appointment.IsTelemedicine}} (telemedicine){{end}}</dd></div>
            <div class="col-span-2"><dt class="text-gray-500">Reason</dt><dd>{{.Appointment.Reason}}</dd></div>
            {{if .Appointment.Notes}}<div class="col-span-2"><dt class="text-gray-500">Notes</dt><dd>{{.Appointment.Notes}}</dd></div>{{end}}
            {{if .Appointment.Diagnosis}}<div class="col-span-2"><dt class="text-gray-500">Diagnosis</dt><dd>{{.Appointment.Diagnosis}}</dd></div>{{end}}
            {{if .Appointment.Prescription}}<div class="col-span-2"><dt class="text-gray-500">Prescription</dt><dd>{{.Appointment.Prescription}}</dd></div>{{end}}
            {{if .Appointment.MeetingURL}}<div class="col-span-2"><dt class="text-gray-500">Meeting</dt>
                 <dd><a href="{{.Appointment.MeetingURL}}" class="text-teal-600 hover:text-teal-700">{{.Appointment.MeetingURL}}</a></dd></div>{{end}}
        </dl>
        {{if eq (printf "%s" .Appointment.Status) "scheduled"}}
        <form method="POST" action="/appointments/{{.Appointment.ID}}/cancel"
              onsubmit="return confirm('Cancel this appointment?')">
            <button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-red-700 bg-red-50 hover:bg-red-100">Cancel appointment</button>
        </form>
        {{end}}
    </div>
</div>
{{end}}`,

	"appointments/create": `{{define "content"}}
<div class="px-4 py-6 sm:px-0 max-w-2xl">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Schedule Appointment</h1>
    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4"><div class="text-sm text-red-700">{{.Error}}</div></div>
    {{end}}
    <form method="POST" action="/appointments/new" class="bg-white shadow rounded-lg p-6 space-y-4">
        <select name="patient_id" required class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <option value="">Select patient</option>
            {{range .Patients}}
            <option value="{{.ID}}" {{if eq .ID $.SelectedID}}selected{{end}}>{{.FullName}}</option>
            {{end}}
        </select>
        <div class="grid grid-cols-2 gap-4">
            <input name="scheduled_at" type="datetime-local" required
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <input name="duration_minutes" type="number" value="30" min="5"
                   class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
        </div>
        <select name="appointment_type" class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm">
            <option value="consultation">Consultation</option>
            <option value="follow_up">Follow-up</option>
            <option value="exam">Exam</option>
            <option value="procedure">Procedure</option>
        </select>
        <textarea name="reason" rows="3" placeholder="Reason"
                  class="block w-full px-3 py-2 border border-gray-300 rounded-md text-sm"></textarea>
        <label class="flex items-center gap-2 text-sm text-gray-700">
            <input name="is_telemedicine" type="checkbox"> Telemedicine
        </label>
        <div class="flex justify-end gap-2">
            <a href="/appointments" class="px-4 py-2 text-sm font-medium rounded-md text-gray-700 bg-white border border-gray-300 hover:bg-gray-50">Cancel</a>
            <button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Schedule</button>
        </div>
    </form>
</div>
{{end}}`,

	"alerts": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Critical Alerts</h1>
    <div class="bg-white shadow rounded-lg overflow-hidden">
        <table class="min-w-full divide-y divide-gray-200">
            <thead class="bg-gray-50">
                <tr>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Patient</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Recorded</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">HR</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">BP</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">SpO2</th>
                    <th class="px-6 py-3 text-left text-xs font-medium text-gray-500 uppercase">Temp</th>
                </tr>
            </thead>
            <tbody class="divide-y divide-gray-200 text-sm">
                {{range .Vitals}}
                <tr>
                    <td class="px-6 py-4"><a href="/patients/{{.PatientID}}/vitals" class="text-teal-600 hover:text-teal-700">#{{.PatientID}}</a></td>
                    <td class="px-6 py-4 text-gray-500">{{formatTime .RecordedAt}}</td>
                    <td class="px-6 py-4 font-medium text-red-600">{{num .HeartRate}}</td>
                    <td class="px-6 py-4 font-medium text-red-600">{{num .SystolicPressure}}/{{num .DiastolicPressure}}</td>
                    <td class="px-6 py-4 font-medium text-red-600">{{dec .OxygenSaturation}}</td>
                    <td class="px-6 py-4 font-medium text-red-600">{{dec .Temperature}}</td>
                </tr>
                {{else}}
                <tr><td colspan="6" class="px-6 py-8 text-center text-gray-500">No critical measurements</td></tr>
                {{end}}
            </tbody>
        </table>
    </div>
</div>
{{end}}`,

	"error": `{{define "content"}}
<div class="px-4 py-16 sm:px-0 text-center">
    <h1 class="text-2xl font-semibold text-gray-900">{{.Message}}</h1>
    {{if .Detail}}<p class="mt-2 text-sm text-gray-500">{{.Detail}}</p>{{end}}
    <a href="/" class="mt-6 inline-block px-4 py-2 text-sm font-medium rounded-md text-white bg-teal-600 hover:bg-teal-700">Back to dashboard</a>
</div>
{{end}}`,
}
