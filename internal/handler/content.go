package handler

// Card is a titled block of the landing page
type Card struct {
	Title       string
	Description string
}

// Testimonial is a customer quote
type Testimonial struct {
	Name string
	Text string
}

// QA is one FAQ entry
type QA struct {
	Question string
	Answer   string
}

var landingFeatures = []Card{
	{"Terapis Profesional & Bersertifikat", "Tim terapis berpengalaman dan terlatih dengan sertifikasi resmi"},
	{"Layanan 24 Jam Area Jogja", "Tersedia setiap hari, kapan saja Anda membutuhkan"},
	{"Pijat Datang ke Lokasi Anda", "Ke rumah, hotel, apartemen, atau kos-kosan"},
	{"Peralatan Bersih & Higienis", "Standar kebersihan tinggi untuk kenyamanan Anda"},
	{"Harga Transparan", "Tanpa biaya tersembunyi atau biaya tambahan"},
	{"Pilihan Terapis", "Tersedia terapis perempuan dan laki-laki sesuai preferensi"},
}

var landingServices = []Card{
	{"Pijat Tradisional", "Teknik pijat warisan nusantara untuk relaksasi total"},
	{"Pijat Refleksi Kaki", "Stimulasi titik-titik refleksi untuk kesehatan optimal"},
	{"Pijat Lulur / Scrub", "Perawatan kulit dengan lulur tradisional"},
	{"Pijat Ibu Hamil", "Teknik khusus untuk ibu hamil yang aman dan nyaman"},
	{"Pijat Totok Wajah", "Terapi wajah untuk meremajakan kulit wajah"},
	{"Layanan Tambahan", "Kerokan, Bekam, Essential Oil"},
}

var landingTestimonials = []Testimonial{
	{"Siti R.", "Terapis datang tepat waktu, pijatnya enak dan profesional! Saya pesan untuk di hotel, pelayanannya sangat memuaskan."},
	{"Budi S.", "Recommended banget! Harga terjangkau, terapis ramah dan skillnya oke. Badan jadi fresh setelah dipijat."},
	{"Maya L.", "Pelayanan 24 jam sangat membantu! Saya pesan tengah malam karena pegal-pegal, responnya cepat dan langsung datang."},
	{"Agus W.", "Sudah langganan berkali-kali. Terapis profesional, peralatan bersih, dan harganya worth it!"},
	{"Dewi P.", "Pijat ibu hamilnya luar biasa! Terapis sangat hati-hati dan paham tekniknya. Bikin rileks banget."},
	{"Rendi K.", "Fast response via WhatsApp, booking gampang, terapis datang on time. Pokoknya top service!"},
}

var landingSteps = []Card{
	{"Chat WhatsApp", "Klik tombol WhatsApp dan chat dengan tim kami"},
	{"Pilih Layanan & Lokasi", "Tentukan jenis pijat dan lokasi Anda di area Jogja"},
	{"Terapis Datang", "Terapis profesional kami akan datang ke lokasi Anda"},
}

var landingFAQ = []QA{
	{"Apakah melayani 24 jam?", "Ya, kami melayani 24 jam setiap hari untuk kenyamanan Anda. Anda bisa booking kapan saja sesuai kebutuhan."},
	{"Apakah bisa ke hotel atau kos?", "Tentu bisa! Kami melayani panggilan ke rumah, hotel, apartemen, kos-kosan, dan villa di area Yogyakarta dan sekitarnya."},
	{"Apakah ada terapis perempuan/laki-laki?", "Ya, kami memiliki terapis perempuan dan laki-laki. Anda bisa memilih sesuai preferensi saat booking."},
	{"Bagaimana cara booking?", "Sangat mudah! Cukup klik tombol WhatsApp, chat dengan kami, tentukan layanan dan lokasi, lalu terapis akan datang ke tempat Anda."},
	{"Berapa lama waktu kedatangan terapis?", "Waktu kedatangan biasanya 30-60 menit setelah booking, tergantung lokasi dan ketersediaan terapis."},
	{"Apakah harga sudah termasuk biaya transportasi?", "Ya, harga yang tercantum sudah termasuk biaya terapis datang ke lokasi Anda. Tidak ada biaya tambahan."},
	{"Apa saja yang perlu disiapkan?", "Anda hanya perlu menyediakan tempat yang nyaman seperti kasur atau matras. Terapis akan membawa semua peralatan yang diperlukan."},
	{"Apakah ada paket untuk beberapa orang?", "Ya, kami melayani paket untuk beberapa orang sekaligus. Silakan tanyakan detailnya via WhatsApp untuk penawaran terbaik."},
}
