package i18n

// ThMessages is the Thai catalog.
var ThMessages = map[string]string{
	"app.title": "แอปบันทึกย่อ",

	"menu.title": "เมนู",
	"menu.home":  "หน้าแรก",
	"menu.tasks": "รายการ",
	"menu.about": "เกี่ยวกับ",

	"form.title.label":       "ชื่อเรื่องงาน",
	"form.title.placeholder": "ใส่ชื่อเรื่องงานที่นี่...",
	"form.desc.label":        "รายละเอียด",
	"form.desc.placeholder":  "ใส่รายละเอียดงานที่นี่...",
	"form.submit":            "เพิ่มงาน",

	"task.mark_done":   "เสร็จสิ้น",
	"task.mark_undone": "ยกเลิก",
	"task.delete":      "ลบ",
	"task.empty":       "ยังไม่มีงาน",
	"task.count":       "%d งาน, เสร็จแล้ว %d",

	"alert.empty_title": "โปรดป้อนชื่อเรื่องสำหรับงาน",
	"alert.hint":        "enter: ตกลง",
	"confirm.delete":    "คุณแน่ใจหรือไม่ว่าต้องการลบงานนี้?",
	"confirm.hint":      "y: ใช่ · n: ไม่",

	"status.added":    "เพิ่มงาน #%d แล้ว",
	"status.toggled":  "เปลี่ยนสถานะงาน #%d แล้ว",
	"status.deleted":  "ลบงาน #%d แล้ว",
	"status.declined": "ยกเลิกการลบ",

	"about.body": `# แอปบันทึกย่อ

รายการงานขนาดเล็กสำหรับเทอร์มินัล

- พิมพ์ **ชื่อเรื่อง** และ **รายละเอียด** แล้วกด *enter*
- กด *space* ที่งานเพื่อทำเครื่องหมายว่าเสร็จ กดอีกครั้งเพื่อยกเลิก
- กด *d* เพื่อลบงาน ระบบจะถามยืนยันก่อน

งานถูกเก็บไว้ในหน่วยความจำเท่านั้น และจะหายไปเมื่อปิดโปรแกรม
`,

	"shell.title_prompt":  "ชื่อเรื่อง: ",
	"shell.desc_prompt":   "รายละเอียด: ",
	"shell.not_found":     "ไม่พบงานหมายเลข %d",
	"shell.add_cancelled": "ยกเลิกการเพิ่มงาน",

	"seed.1.title": "อ่านหนังสือ",
	"seed.1.desc":  "Go + Bubble Tea + Lip Gloss",
	"seed.2.title": "เขียนโค้ด",
	"seed.2.desc":  "ทำโปรเจกต์สำหรับชั้นเรียน",
	"seed.3.title": "ปรับใช้แอป",
	"seed.3.desc":  "อัปโหลดโปรเจกต์ไปที่ GitHub",
}
